package codec

import (
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/unkn0wn-root/paywire/payment"
)

// Field numbers of the equivalent proto3 message:
//
//	message Payment {
//	  string from   = 1;
//	  string to     = 2;
//	  uint64 amount = 3;
//	}
const (
	pbFrom   protowire.Number = 1
	pbTo     protowire.Number = 2
	pbAmount protowire.Number = 3
)

// Protobuf encodes payments in protobuf wire format without generated code.
// Zero-valued fields are omitted and unknown fields are skipped on decode.
type Protobuf struct{}

var _ Codec[payment.Payment] = Protobuf{}

func (Protobuf) Encode(p payment.Payment) ([]byte, error) {
	b := make([]byte, 0, len(p.From)+len(p.To)+2*(1+protowire.SizeVarint(payment.MaxLen))+1+protowire.SizeVarint(p.Amount))
	if p.From != "" {
		b = protowire.AppendTag(b, pbFrom, protowire.BytesType)
		b = protowire.AppendString(b, p.From)
	}
	if p.To != "" {
		b = protowire.AppendTag(b, pbTo, protowire.BytesType)
		b = protowire.AppendString(b, p.To)
	}
	if p.Amount != 0 {
		b = protowire.AppendTag(b, pbAmount, protowire.VarintType)
		b = protowire.AppendVarint(b, p.Amount)
	}
	return b, nil
}

func (Protobuf) Decode(b []byte) (payment.Payment, error) {
	var p payment.Payment
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return payment.Payment{}, fmt.Errorf("codec: protobuf tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case (num == pbFrom || num == pbTo) && typ == protowire.BytesType:
			s, m, err := consumeBoundedString(b)
			if err != nil {
				return payment.Payment{}, err
			}
			if num == pbFrom {
				p.From = s
			} else {
				p.To = s
			}
			b = b[m:]
		case num == pbAmount && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return payment.Payment{}, fmt.Errorf("codec: protobuf amount: %w", protowire.ParseError(m))
			}
			p.Amount = v
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return payment.Payment{}, fmt.Errorf("codec: protobuf field %d: %w", num, protowire.ParseError(m))
			}
			b = b[m:]
		}
	}
	return p, nil
}

// consumeBoundedString reads a length-delimited string, checking the declared
// length against payment.MaxLen before touching the body.
func consumeBoundedString(b []byte) (string, int, error) {
	l, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return "", 0, fmt.Errorf("codec: protobuf length: %w", protowire.ParseError(n))
	}
	if l > payment.MaxLen {
		return "", 0, payment.ErrStringTooLong
	}
	if l > uint64(len(b)-n) {
		return "", 0, payment.ErrInsufficientData
	}
	body := b[n : n+int(l)]
	if !utf8.Valid(body) {
		return "", 0, &payment.Error{Kind: payment.KindUTF8, Msg: "protobuf string field"}
	}
	return string(body), n + int(l), nil
}
