package codec

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/unkn0wn-root/paywire/payment"
)

// Msgpack encodes payments with vmihailenco/msgpack/v5 as a map keyed by
// the `msgpack` struct tags. The zero value is ready to use.
type Msgpack struct{}

var _ Codec[payment.Payment] = Msgpack{}

func (Msgpack) Encode(p payment.Payment) ([]byte, error) {
	return msgpack.Marshal(p)
}
func (Msgpack) Decode(b []byte) (payment.Payment, error) {
	var p payment.Payment
	err := msgpack.Unmarshal(b, &p)
	return validated(p, err)
}
