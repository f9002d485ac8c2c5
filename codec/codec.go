// Package codec provides interchangeable serializations of payment.Payment.
//
// Binary is the canonical length-prefixed wire format. JSON, Msgpack, CBOR
// and Protobuf exist for callers that need a self-describing encoding; every
// one of them applies the same field rules as the binary decoder
// (valid UTF-8, at most payment.MaxLen bytes per text field) when decoding.
package codec

import "github.com/unkn0wn-root/paywire/payment"

// Codec encodes/decodes values V to []byte for storage or transport.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// validated runs the binary decoder's field rules over a decoded payment.
func validated(p payment.Payment, err error) (payment.Payment, error) {
	if err != nil {
		return payment.Payment{}, err
	}
	if err := p.Validate(); err != nil {
		return payment.Payment{}, err
	}
	return p, nil
}
