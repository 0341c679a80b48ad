package domain

// Bucket is the canonical lifecycle classification for a shipment. The integer
// code is the wire and storage representation; the canonical name is what APIs
// and the dashboard display. The set is closed and defined once at startup.
type Bucket int

const (
	// BucketAll is the wildcard bucket: "no filter" in queries, "could not
	// classify" as a detection result.
	BucketAll Bucket = iota
	// BucketNew indicates an order that has not entered fulfilment yet.
	BucketNew
	// BucketReadyToShip indicates the shipment is packed and awaiting courier assignment.
	BucketReadyToShip
	// BucketCourierAssigned indicates an AWB has been assigned by a courier.
	BucketCourierAssigned
	// BucketPickupScheduled indicates a pickup has been booked with the courier.
	BucketPickupScheduled
	// BucketPickedUp indicates the courier has collected the shipment.
	BucketPickedUp
	// BucketInTransit indicates the shipment is moving through the courier network.
	BucketInTransit
	// BucketOutForDelivery indicates the shipment is on its final delivery leg.
	BucketOutForDelivery
	// BucketDelivered indicates the shipment reached the buyer.
	BucketDelivered
	// BucketNDR indicates a failed delivery attempt awaiting seller/buyer action.
	BucketNDR
	// BucketRTOInitiated indicates the shipment has entered the return-to-origin flow.
	BucketRTOInitiated
	// BucketRTOInTransit indicates the return shipment is moving back to the seller.
	BucketRTOInTransit
	// BucketRTODelivered indicates the return shipment was received at origin.
	BucketRTODelivered
	// BucketCancelledOrder indicates the order was cancelled before shipping.
	BucketCancelledOrder
	// BucketCancelledShipment indicates the shipment was cancelled after manifest.
	BucketCancelledShipment
	// BucketException indicates the shipment is lost, damaged or otherwise stuck.
	BucketException
	// BucketDisposed indicates the courier destroyed or auctioned the shipment.
	BucketDisposed
	// BucketAwaiting is the unknown/unset default used for reverse lookups.
	BucketAwaiting
)

// bucketNames is the single source of truth for the code→name direction.
// nameToBucket is derived from it in init so the two maps cannot drift.
var bucketNames = map[Bucket]string{
	BucketAll:               "ALL",
	BucketNew:               "NEW",
	BucketReadyToShip:       "READY_TO_SHIP",
	BucketCourierAssigned:   "COURIER_ASSIGNED",
	BucketPickupScheduled:   "PICKUP_SCHEDULED",
	BucketPickedUp:          "PICKED_UP",
	BucketInTransit:         "IN_TRANSIT",
	BucketOutForDelivery:    "OUT_FOR_DELIVERY",
	BucketDelivered:         "DELIVERED",
	BucketNDR:               "NDR",
	BucketRTOInitiated:      "RTO_INITIATED",
	BucketRTOInTransit:      "RTO_IN_TRANSIT",
	BucketRTODelivered:      "RTO_DELIVERED",
	BucketCancelledOrder:    "CANCELLED_ORDER",
	BucketCancelledShipment: "CANCELLED_SHIPMENT",
	BucketException:         "EXCEPTION",
	BucketDisposed:          "DISPOSED",
	BucketAwaiting:          "AWAITING",
}

var nameToBucket = make(map[string]Bucket, len(bucketNames))

func init() {
	for b, name := range bucketNames {
		nameToBucket[name] = b
	}
}

// String returns the canonical name, or "AWAITING" for any code outside the
// defined set. It is total: nil-ish and garbage codes never fail.
func (b Bucket) String() string {
	if name, ok := bucketNames[b]; ok {
		return name
	}
	return bucketNames[BucketAwaiting]
}

// Code returns the stable integer code persisted for this bucket.
func (b Bucket) Code() int {
	return int(b)
}

// IsFinal reports whether the bucket ends the shipment lifecycle. Final
// shipments no longer need tracking updates polled from the vendor.
func (b Bucket) IsFinal() bool {
	return b == BucketDelivered || b == BucketRTODelivered
}

// ValidCode reports whether an integer code belongs to the defined set.
func ValidCode(code int) bool {
	_, ok := bucketNames[Bucket(code)]
	return ok
}

// Buckets returns every defined bucket in code order.
func Buckets() []Bucket {
	all := make([]Bucket, 0, len(bucketNames))
	for b := BucketAll; b <= BucketAwaiting; b++ {
		all = append(all, b)
	}
	return all
}

// statusFamilies groups fine-grained buckets under the coarse names the
// dashboard tabs filter by. "ALL" expands to an empty set meaning "no filter",
// not "matches nothing".
var statusFamilies = map[string][]Bucket{
	"ALL":           {},
	"NEW":           {BucketNew},
	"READY-TO-SHIP": {BucketReadyToShip, BucketCourierAssigned, BucketPickupScheduled},
	"TRANSIT":       {BucketPickedUp, BucketInTransit, BucketOutForDelivery},
	"DELIVERED":     {BucketDelivered},
	"NDR":           {BucketNDR},
	"RTO":           {BucketRTOInitiated, BucketRTOInTransit, BucketRTODelivered},
	"CANCELLED":     {BucketCancelledOrder, BucketCancelledShipment},
	"EXCEPTION":     {BucketException, BucketDisposed},
}
