package payment

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a codec failure.
type ErrorKind uint8

const (
	KindIO ErrorKind = iota + 1
	KindUTF8
	KindInsufficientData
	KindTrailingData
	KindStringTooLong
	KindFieldTooLong
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindUTF8:
		return "utf8"
	case KindInsufficientData:
		return "insufficient_data"
	case KindTrailingData:
		return "trailing_data"
	case KindStringTooLong:
		return "string_too_long"
	case KindFieldTooLong:
		return "field_too_long"
	case 0:
		return "unknown"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Error is returned by every encode/decode failure in this package.
// Msg is only set for KindIO, KindUTF8 and KindFieldTooLong.
type Error struct {
	Kind ErrorKind
	Msg  string
}

var (
	ErrIO               = &Error{Kind: KindIO}
	ErrUTF8             = &Error{Kind: KindUTF8}
	ErrInsufficientData = &Error{Kind: KindInsufficientData}
	ErrTrailingData     = &Error{Kind: KindTrailingData}
	ErrStringTooLong    = &Error{Kind: KindStringTooLong}
	ErrFieldTooLong     = &Error{Kind: KindFieldTooLong}
)

func (e *Error) Error() string {
	var s string
	switch e.Kind {
	case KindIO:
		s = "payment: could not encode"
	case KindUTF8:
		s = "payment: failed to parse UTF-8 string"
	case KindInsufficientData:
		s = "payment: data buffer was too short"
	case KindTrailingData:
		s = "payment: data buffer had extra, unexpected bytes"
	case KindStringTooLong:
		s = fmt.Sprintf("payment: declared string length exceeds limit of %d bytes", MaxLen)
	case KindFieldTooLong:
		s = "payment: field length does not fit in a u32 prefix"
	default:
		s = "payment: " + e.Kind.String()
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

// Is matches on Kind only, so errors.Is(err, ErrUTF8) holds for any UTF-8
// failure regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the ErrorKind carried by err, or 0 if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
