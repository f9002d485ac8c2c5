package codec

import "github.com/unkn0wn-root/paywire/payment"

// Binary is the canonical payment wire format. The zero value is ready to use.
type Binary struct{}

var _ Codec[payment.Payment] = Binary{}

func (Binary) Encode(p payment.Payment) ([]byte, error) { return payment.Encode(p) }
func (Binary) Decode(b []byte) (payment.Payment, error) { return payment.Decode(b) }
