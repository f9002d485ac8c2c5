// Package payment implements the binary wire format for a payment record.
//
// # Format
//
// All integers are big-endian. There is no magic, version byte, padding or
// checksum; both sides agree on the layout and on MaxLen out of band.
//
//	[u32 from_len][from_len bytes UTF-8][u32 to_len][to_len bytes UTF-8][u64 amount]
//
// An encoded payment is always 16 + len(From) + len(To) bytes.
//
// # Decoding
//
// Decode is a single forward pass. Each declared string length is compared
// with MaxLen before the body is read, so a hostile length prefix cannot force
// a large allocation. Short input fails with ErrInsufficientData, leftover
// bytes with ErrTrailingData, invalid text with ErrUTF8 and oversized lengths
// with ErrStringTooLong. No partial payment is ever returned.
//
// Encode and Decode keep no state and are safe for concurrent use.
package payment
