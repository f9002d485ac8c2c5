package paywire

import "time"

const defaultTTL = 24 * time.Hour

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func encodedLenCost(_ string, raw []byte) int64 { return int64(len(raw)) }
