package payment

import (
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/unkn0wn-root/paywire/internal/wire"
)

const (
	// MaxLen is the largest declared byte length Decode accepts for either text field.
	MaxLen = 1024

	// MaxEncodedLen is the size of the largest buffer Decode can accept.
	MaxEncodedLen = 4 + MaxLen + 4 + MaxLen + 8

	minEncodedLen = 4 + 4 + 8
)

// Payment is a transfer of Amount from one party to another.
type Payment struct {
	From   string `json:"from" msgpack:"from" cbor:"1,keyasint"`
	To     string `json:"to" msgpack:"to" cbor:"2,keyasint"`
	Amount uint64 `json:"amount" msgpack:"amount" cbor:"3,keyasint"`
}

// Validate reports whether p would survive an Encode/Decode round trip:
// both text fields must be valid UTF-8 and at most MaxLen bytes long.
func (p Payment) Validate() error {
	for _, f := range [...]struct{ name, v string }{{"from", p.From}, {"to", p.To}} {
		if len(f.v) > MaxLen {
			return ErrStringTooLong
		}
		if !utf8.ValidString(f.v) {
			return &Error{Kind: KindUTF8, Msg: f.name + ": invalid utf-8"}
		}
	}
	return nil
}

// EncodedLen returns the exact number of bytes Encode produces for p.
func EncodedLen(p Payment) int { return minEncodedLen + len(p.From) + len(p.To) }

// Encode serializes p as
//
//	from_len(u32 be) | from | to_len(u32 be) | to | amount(u64 be)
//
// MaxLen is not enforced here; a payment with an oversized field encodes
// fine and is rejected by Decode.
func Encode(p Payment) ([]byte, error) {
	return Append(make([]byte, 0, EncodedLen(p)), p)
}

// Append is like Encode but appends to dst.
func Append(dst []byte, p Payment) ([]byte, error) {
	if err := checkPrefix("from", p.From); err != nil {
		return dst, err
	}
	if err := checkPrefix("to", p.To); err != nil {
		return dst, err
	}
	dst = wire.AppendString(dst, p.From)
	dst = wire.AppendString(dst, p.To)
	dst = wire.AppendUint64(dst, p.Amount)
	return dst, nil
}

// EncodeTo writes the encoding of p to w. Write failures surface as KindIO.
func EncodeTo(w io.Writer, p Payment) (int, error) {
	b, err := Encode(p)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	if err != nil {
		return n, &Error{Kind: KindIO, Msg: err.Error()}
	}
	return n, nil
}

// Decode parses b, which must hold exactly one encoded payment.
// On failure the zero Payment is returned with an *Error.
func Decode(b []byte) (Payment, error) {
	r := wire.NewReader(b)

	from, err := readString(r, "from")
	if err != nil {
		return Payment{}, err
	}
	to, err := readString(r, "to")
	if err != nil {
		return Payment{}, err
	}
	amount, err := r.Uint64()
	if err != nil {
		return Payment{}, ErrInsufficientData
	}
	if r.Len() > 0 {
		return Payment{}, ErrTrailingData
	}
	return Payment{From: from, To: to, Amount: amount}, nil
}

// readString checks the declared length against MaxLen before reading the body.
func readString(r *wire.Reader, field string) (string, error) {
	p, err := r.LenPrefixed(MaxLen)
	switch {
	case errors.Is(err, wire.ErrTooLong):
		return "", ErrStringTooLong
	case err != nil:
		return "", ErrInsufficientData
	}
	if i := wire.InvalidUTF8(p); i >= 0 {
		return "", &Error{Kind: KindUTF8, Msg: fmt.Sprintf("%s: invalid utf-8 sequence at byte %d", field, i)}
	}
	return string(p), nil
}

func checkPrefix(field, s string) error {
	if uint64(len(s)) > math.MaxUint32 {
		return &Error{Kind: KindFieldTooLong, Msg: fmt.Sprintf("%s: %d bytes", field, len(s))}
	}
	return nil
}
