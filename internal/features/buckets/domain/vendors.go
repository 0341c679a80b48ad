package domain

// Known vendor identifiers. Raw vendor names are upper-cased before lookup, so
// these constants are the canonical spelling.
const (
	VendorDelhivery   = "DELHIVERY"
	VendorShiprocket  = "SHIPROCKET"
	VendorSmartship   = "SMARTSHIP"
	VendorEcomExpress = "ECOM_EXPRESS"
	VendorXpressbees  = "XPRESSBEES"
)

// builtinVendorDictionaries maps each vendor's own status vocabulary onto
// canonical buckets. Keys are the vendor's raw tokens upper-cased. These tables
// are read-only; runtime additions go through the external-mappings table,
// which is only consulted when a built-in lookup misses.
var builtinVendorDictionaries = map[string]map[string]Bucket{
	VendorDelhivery: {
		"MANIFESTED":     BucketCourierAssigned,
		"NOT PICKED":     BucketPickupScheduled,
		"OPEN":           BucketPickupScheduled,
		"SCHEDULED":      BucketPickupScheduled,
		"PICKED UP":      BucketPickedUp,
		"IN TRANSIT":     BucketInTransit,
		"PENDING":        BucketNDR,
		"DISPATCHED":     BucketOutForDelivery,
		"DELIVERED":      BucketDelivered,
		"RTO":            BucketRTOInitiated,
		"RTO IN TRANSIT": BucketRTOInTransit,
		"RTO DELIVERED":  BucketRTODelivered,
		"RETURNED":       BucketRTODelivered,
		"CANCELLED":      BucketCancelledShipment,
		"LOST":           BucketException,
		"DESTROYED":      BucketDisposed,
		// Delhivery status-type shorthands seen on scan payloads.
		"UD": BucketInTransit,
		"DL": BucketDelivered,
		"RT": BucketRTOInitiated,
		"PP": BucketPickedUp,
	},
	VendorShiprocket: {
		"4":  BucketCourierAssigned,   // AWB ASSIGNED
		"5":  BucketPickupScheduled,   // PICKUP SCHEDULED
		"6":  BucketPickedUp,          // SHIPPED
		"7":  BucketDelivered,         // DELIVERED
		"8":  BucketCancelledShipment, // CANCELED
		"9":  BucketRTOInitiated,      // RTO INITIATED
		"10": BucketRTODelivered,      // RTO DELIVERED
		"12": BucketException,         // LOST
		"14": BucketRTOInitiated,      // RTO ACKNOWLEDGED
		"15": BucketPickupScheduled,   // PICKUP RESCHEDULED
		"17": BucketOutForDelivery,    // OUT FOR DELIVERY
		"18": BucketInTransit,         // IN TRANSIT
		"19": BucketPickupScheduled,   // OUT FOR PICKUP
		"21": BucketNDR,               // UNDELIVERED
		"38": BucketInTransit,         // REACHED AT DESTINATION HUB
		"40": BucketRTOInTransit,      // RTO NDR
		"42": BucketPickedUp,          // PICKED UP
		"44": BucketDisposed,          // DISPOSED OFF
	},
	VendorSmartship: {
		"2":   BucketCourierAssigned, // ORDER_MANIFESTED
		"4":   BucketPickedUp,        // ORDER_SHIPPED
		"6":   BucketNDR,             // ORDER_UNDELIVERED_ATTEMPT
		"7":   BucketOutForDelivery,  // ORDER_OUT_FOR_DELIVERY
		"10":  BucketInTransit,       // ORDER_IN_TRANSIT
		"11":  BucketDelivered,       // ORDER_DELIVERED
		"13":  BucketCancelledShipment,
		"18":  BucketRTOInitiated,
		"19":  BucketRTOInTransit,
		"28":  BucketRTODelivered,
		"163": BucketException, // SHIPMENT_LOST
		"169": BucketDisposed,
	},
	VendorEcomExpress: {
		"SAL":     BucketCourierAssigned, // SHIPMENT ASSIGNED
		"OFP":     BucketPickupScheduled, // OUT FOR PICKUP
		"PKD":     BucketPickedUp,
		"IT":      BucketInTransit,
		"BAG-IN":  BucketInTransit,
		"OFD":     BucketOutForDelivery,
		"DLVD":    BucketDelivered,
		"UND":     BucketNDR,
		"RTO-INT": BucketRTOInitiated,
		"RTO-IT":  BucketRTOInTransit,
		"RTO-DLV": BucketRTODelivered,
		"CNCL":    BucketCancelledShipment,
		"LD":      BucketException, // LOST/DAMAGED
	},
	VendorXpressbees: {
		"DRC": BucketCourierAssigned, // DATA RECEIVED
		"OFP": BucketPickupScheduled,
		"PUD": BucketPickedUp,
		"IT":  BucketInTransit,
		"RAD": BucketInTransit, // REACHED AT DESTINATION
		"OFD": BucketOutForDelivery,
		"DLV": BucketDelivered,
		"UD":  BucketNDR,
		"RTO": BucketRTOInitiated,
		"RTI": BucketRTOInTransit,
		"RTD": BucketRTODelivered,
		"CAN": BucketCancelledShipment,
		"LT":  BucketException,
	},
}
