package domain

import (
	"strings"
	"sync"
)

// Resolver converts raw shipment-status input (canonical names, vendor codes,
// free text) into canonical buckets. It owns the external vendor mappings and
// a memoizing lookup cache; everything else it consults is immutable package
// data. One instance is constructed at startup and shared by all callers.
//
// No entry point returns an error: unrecognized input degrades to a default
// bucket (NEW, AWAITING or ALL depending on the call) so shipment processing
// is never blocked on an unknown vendor string. The only "not found" signal is
// the false return of BucketFromVendorCode, which callers use to fall through
// to free-text detection.
type Resolver struct {
	mu sync.RWMutex
	// gen counts cache generations. A lookup records it while reading the
	// dictionaries and skips its memo write if a reload or clear bumped it in
	// between, so a fresh cache never receives values from the old tables.
	gen      uint64
	cache    map[string]Bucket
	external map[string]map[string]Bucket
}

// NewResolver returns a Resolver with an empty cache and no external mappings.
func NewResolver() *Resolver {
	return &Resolver{
		cache:    make(map[string]Bucket),
		external: make(map[string]map[string]Bucket),
	}
}

// normalizeToken upper-cases and trims a raw vendor token or vendor name so
// dictionary keys and cache keys are casing-independent.
func normalizeToken(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func cacheKey(vendor, token string) string {
	return vendor + ":" + token
}

// BucketFromCanonicalStatus maps a canonical status name to its bucket.
// Matching is case-insensitive with surrounding whitespace ignored. Unknown
// names return BucketNew; callers must not use this as validation.
func BucketFromCanonicalStatus(status string) Bucket {
	if b, ok := nameToBucket[normalizeToken(status)]; ok {
		return b
	}
	return BucketNew
}

// BucketNameFromCode returns the canonical name for a stored bucket code.
// Codes outside the defined set yield "AWAITING"; the function never fails.
func BucketNameFromCode(code int) string {
	return Bucket(code).String()
}

// BucketsForStatusFamily expands a coarse dashboard family name into its set
// of buckets. The second return distinguishes an unknown family (nil, false)
// from "ALL", whose expansion is an intentionally empty set meaning
// "no filter" ([], true).
func BucketsForStatusFamily(family string) ([]Bucket, bool) {
	set, ok := statusFamilies[normalizeToken(family)]
	if !ok {
		return nil, false
	}
	out := make([]Bucket, len(set))
	copy(out, set)
	return out, true
}

// IsRTOStatus reports whether the status text belongs to the RTO family.
// Note it also matches the "rto" inside RTO_DELIVERED text; callers that need
// "still in RTO flow" must additionally check IsDeliveredStatus or compare
// against BucketRTODelivered.
func IsRTOStatus(status, statusCode string) bool {
	return rtoStatusPattern.MatchString(textBlob(status, statusCode))
}

// IsNDRStatus reports whether the status text indicates a failed delivery attempt.
func IsNDRStatus(status, statusCode string) bool {
	return ndrStatusPattern.MatchString(textBlob(status, statusCode))
}

// IsDeliveredStatus reports whether the status text indicates a delivery.
func IsDeliveredStatus(status, statusCode string) bool {
	return deliveredStatusPattern.MatchString(textBlob(status, statusCode))
}

// IsFinalStatus reports whether a canonical status name ends the lifecycle.
// The match is exact, not keyword-based: only DELIVERED and RTO_DELIVERED stop
// vendor polling.
func IsFinalStatus(status string) bool {
	b, ok := nameToBucket[normalizeToken(status)]
	return ok && b.IsFinal()
}

func textBlob(status, statusCode string) string {
	return strings.ToLower(strings.TrimSpace(status + " " + statusCode))
}

// BucketFromVendorCode resolves a vendor's raw status token via the lookup
// cache, then the built-in dictionary, then the external dictionary, in that
// order. Dictionary hits are memoized before returning. Unlike every other
// entry point this one reports "unknown" (false) instead of defaulting, so
// callers can fall through to DetectBucket.
func (r *Resolver) BucketFromVendorCode(vendorStatusCode, vendorName string) (Bucket, bool) {
	code := normalizeToken(vendorStatusCode)
	vendor := normalizeToken(vendorName)
	if code == "" || vendor == "" {
		return 0, false
	}

	key := cacheKey(vendor, code)

	r.mu.RLock()
	if b, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return b, true
	}
	gen := r.gen
	b, ok := builtinVendorDictionaries[vendor][code]
	if !ok {
		b, ok = r.external[vendor][code]
	}
	r.mu.RUnlock()

	if !ok {
		return 0, false
	}

	r.memoize(key, gen, b)
	return b, true
}

// memoize records a resolution in the cache unless the cache has been replaced
// since gen was read. The result itself is still returned to the caller; only
// the write is dropped, so a reload is never undone by an in-flight lookup.
func (r *Resolver) memoize(key string, gen uint64, b Bucket) {
	r.mu.Lock()
	if r.gen == gen {
		r.cache[key] = b
	}
	r.mu.Unlock()
}

// DetectBucket is the general-purpose entry point combining every strategy:
// vendor dictionary lookup, cache probe, then keyword matching on the
// lower-cased concatenation of status and status code. Unmatched input
// returns BucketAll, a deliberately permissive "could not classify, do not
// exclude" result indistinguishable from an explicit ALL status.
func (r *Resolver) DetectBucket(status, statusCode, vendorName string) Bucket {
	if statusCode != "" && vendorName != "" {
		if b, ok := r.BucketFromVendorCode(statusCode, vendorName); ok {
			return b
		}
	}

	vendor := normalizeToken(vendorName)
	token := normalizeToken(statusCode)
	if token == "" {
		token = normalizeToken(status)
	}
	key := cacheKey(vendor, token)

	var gen uint64
	if vendor != "" {
		r.mu.RLock()
		b, ok := r.cache[key]
		gen = r.gen
		r.mu.RUnlock()
		if ok {
			return b
		}
	}

	blob := textBlob(status, statusCode)

	// RTO_DELIVERED first: its keywords contain the generic RTO keywords, so
	// the ordered scan below would otherwise classify "RTO Delivered" as
	// RTO_INITIATED.
	if rtoDeliveredPattern.MatchString(blob) {
		return r.cacheDetection(vendor, key, gen, BucketRTODelivered)
	}

	for _, p := range keywordPatterns {
		if p.re.MatchString(blob) {
			return r.cacheDetection(vendor, key, gen, p.bucket)
		}
	}

	return BucketAll
}

// cacheDetection memoizes a keyword-detection result when a vendor name was
// supplied; anonymous lookups are not worth remembering. gen is the cache
// generation observed at the probe, so a detection that straddles a reload
// does not repopulate the fresh cache.
func (r *Resolver) cacheDetection(vendor, key string, gen uint64, b Bucket) Bucket {
	if vendor == "" {
		return b
	}
	r.memoize(key, gen, b)
	return b
}

// LoadExternalVendorMappings replaces the externally-sourced mapping table
// wholesale (not a merge) and clears the lookup cache in the same critical
// section, so concurrent lookups observe either the old generation or the new
// one, never a mix of new mappings and stale cache entries.
func (r *Resolver) LoadExternalVendorMappings(mappings map[string]map[string]Bucket) {
	normalized := make(map[string]map[string]Bucket, len(mappings))
	for vendor, codes := range mappings {
		table := make(map[string]Bucket, len(codes))
		for code, b := range codes {
			table[normalizeToken(code)] = b
		}
		normalized[normalizeToken(vendor)] = table
	}

	r.mu.Lock()
	r.gen++
	r.external = normalized
	r.cache = make(map[string]Bucket)
	r.mu.Unlock()
}

// ClearCache empties the lookup cache. Idempotent.
func (r *Resolver) ClearCache() {
	r.mu.Lock()
	r.gen++
	r.cache = make(map[string]Bucket)
	r.mu.Unlock()
}

// CacheSize returns the number of memoized resolutions.
func (r *Resolver) CacheSize() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}
