package codec

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/paywire/payment"
)

var ErrPayloadTooLarge = errors.New("codec: payload too large")

// Limit wraps another codec to enforce a maximum allowed payload size
// at Decode time. Encode is forwarded to Inner unchanged.
//
// MaxDecode == 0 uses payment.MaxEncodedLen, the largest buffer the binary
// format can legally produce. MaxDecode < 0 disables the check.
type Limit[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted length (in bytes) of the incoming
	// payload for Decode.
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c Limit[V]) Decode(b []byte) (V, error) {
	limit := c.MaxDecode
	if limit == 0 {
		limit = payment.MaxEncodedLen
	}
	if limit > 0 && len(b) > limit {
		var zero V
		return zero, fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(b), limit)
	}
	return c.Inner.Decode(b)
}
