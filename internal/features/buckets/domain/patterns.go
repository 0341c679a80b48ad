package domain

import "regexp"

// keywordPattern pairs a bucket with the free-text fragments that imply it.
type keywordPattern struct {
	bucket Bucket
	re     *regexp.Regexp
}

// rtoDeliveredPattern is checked before the ordered table. Its keywords are a
// strict superset of the general RTO keywords ("RTO Delivered" contains "rto"),
// so plain first-match iteration is not enough and the override is explicit.
var rtoDeliveredPattern = regexp.MustCompile(`(?i)rto[_ ]?delivered|return(ed)?[_ ]?to[_ ]?(origin|seller)[_ ]?delivered`)

// keywordPatterns is scanned in order; the first matching pattern wins. The
// ordering is load-bearing: "undelivered" must hit NDR before the bare
// "delivered" pattern, and the RTO variants must precede the generic RTO entry.
var keywordPatterns = []keywordPattern{
	{BucketRTODelivered, rtoDeliveredPattern},
	{BucketRTOInTransit, regexp.MustCompile(`(?i)rto[_ ]?in[_ ]?transit`)},
	{BucketRTOInitiated, regexp.MustCompile(`(?i)rto|return[_ ]?to[_ ]?origin`)},
	{BucketNDR, regexp.MustCompile(`(?i)undelivered|ndr|not[_ ]?delivered|delivery[_ ]?failed|unsuccessful[_ ]?attempt`)},
	{BucketOutForDelivery, regexp.MustCompile(`(?i)out[_ ]?for[_ ]?delivery`)},
	{BucketDelivered, regexp.MustCompile(`(?i)delivered`)},
	{BucketCancelledShipment, regexp.MustCompile(`(?i)cancel`)},
	{BucketException, regexp.MustCompile(`(?i)lost|damaged|untraceable|exception`)},
	{BucketDisposed, regexp.MustCompile(`(?i)disposed|destroyed|auction`)},
	{BucketPickupScheduled, regexp.MustCompile(`(?i)pickup[_ ]?scheduled|out[_ ]?for[_ ]?pickup|pickup[_ ]?rescheduled`)},
	{BucketPickedUp, regexp.MustCompile(`(?i)picked[_ ]?up|pickup[_ ]?done|shipped`)},
	{BucketInTransit, regexp.MustCompile(`(?i)in[_ ]?transit|reached|arrived|departed|dispatched|bagged`)},
	{BucketCourierAssigned, regexp.MustCompile(`(?i)courier[_ ]?assigned|awb[_ ]?assigned|manifest`)},
	{BucketReadyToShip, regexp.MustCompile(`(?i)ready[_ ]?to[_ ]?ship|packed`)},
	{BucketNew, regexp.MustCompile(`(?i)order[_ ]?placed|^new$`)},
}

// Fixed predicate patterns for the status-family checks. These are cheap
// enough to recompute on every call, so their results are never cached.
var (
	rtoStatusPattern       = regexp.MustCompile(`(?i)rto|return[_ ]to[_ ]origin|^rt$`)
	ndrStatusPattern       = regexp.MustCompile(`(?i)undelivered|ndr|not[_ ]delivered|delivery[_ ]failed`)
	deliveredStatusPattern = regexp.MustCompile(`(?i)delivered`)
)
