package codec

import (
	"encoding/json"

	"github.com/unkn0wn-root/paywire/payment"
)

// JSON encodes payments as {"from":..,"to":..,"amount":..}.
type JSON struct{}

var _ Codec[payment.Payment] = JSON{}

func (JSON) Encode(p payment.Payment) ([]byte, error) { return json.Marshal(p) }
func (JSON) Decode(b []byte) (payment.Payment, error) {
	var p payment.Payment
	err := json.Unmarshal(b, &p)
	return validated(p, err)
}
