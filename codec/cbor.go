package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/paywire/payment"
)

// CBOR encodes payments as a CBOR map with integer keys (1 from, 2 to, 3 amount).
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for Core Deterministic encoding (RFC 8949) when the
// bytes are hashed or signed.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[payment.Payment] = CBOR{}

// NewCBOR constructs a CBOR codec. Decoding rejects duplicate map keys and
// invalid UTF-8 text strings.
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		UTF8:        cbor.UTF8RejectInvalid,
		MaxMapPairs: 16,
	}.DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR) Encode(p payment.Payment) ([]byte, error) {
	return c.enc.Marshal(p)
}

func (c CBOR) Decode(b []byte) (payment.Payment, error) {
	var p payment.Payment
	err := c.dec.Unmarshal(b, &p)
	return validated(p, err)
}
