package wire

import (
	"encoding/binary"
	"errors"
	"unicode/utf8"
)

var (
	// ErrShort is returned when fewer bytes remain than a field needs.
	ErrShort = errors.New("wire: short buffer")
	// ErrTooLong is returned when a declared length exceeds the caller's limit.
	ErrTooLong = errors.New("wire: declared length over limit")
)

// Reader is a forward-only cursor over an immutable byte slice.
// Nothing read is ever put back; a failed Uint32, Uint64 or Next leaves the
// offset unchanged.
type Reader struct {
	b   []byte
	off int
}

func NewReader(b []byte) *Reader { return &Reader{b: b} }

// Len reports the number of unread bytes.
func (r *Reader) Len() int { return len(r.b) - r.off }

// Offset reports how many bytes have been consumed.
func (r *Reader) Offset() int { return r.off }

func (r *Reader) Uint32() (uint32, error) {
	if r.Len() < 4 {
		return 0, ErrShort
	}
	v := binary.BigEndian.Uint32(r.b[r.off : r.off+4])
	r.off += 4
	return v, nil
}

func (r *Reader) Uint64() (uint64, error) {
	if r.Len() < 8 {
		return 0, ErrShort
	}
	v := binary.BigEndian.Uint64(r.b[r.off : r.off+8])
	r.off += 8
	return v, nil
}

// Next returns the next n bytes as a subslice of the input (zero-copy).
func (r *Reader) Next(n int) ([]byte, error) {
	if n < 0 || n > r.Len() { // overflow-safe bound check
		return nil, ErrShort
	}
	p := r.b[r.off : r.off+n]
	r.off += n
	return p, nil
}

// LenPrefixed reads a u32 be length followed by that many bytes.
// The length is checked against limit before the body is touched.
func (r *Reader) LenPrefixed(limit uint32) ([]byte, error) {
	n, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	if n > limit {
		return nil, ErrTooLong
	}
	return r.Next(int(n))
}

// AppendUint32 appends v big-endian.
func AppendUint32(dst []byte, v uint32) []byte { return binary.BigEndian.AppendUint32(dst, v) }

// AppendUint64 appends v big-endian.
func AppendUint64(dst []byte, v uint64) []byte { return binary.BigEndian.AppendUint64(dst, v) }

// AppendString appends len(s) as u32 be followed by the bytes of s.
// Callers must ensure len(s) fits in a uint32.
func AppendString(dst []byte, s string) []byte {
	dst = AppendUint32(dst, uint32(len(s)))
	return append(dst, s...)
}

// InvalidUTF8 returns the offset of the first byte that does not start a
// valid UTF-8 sequence, or -1 when p is valid.
func InvalidUTF8(p []byte) int {
	if utf8.Valid(p) {
		return -1
	}
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
