// Package paywire stores payments encoded with a deterministic binary format.
//
// Components:
//   - payment: the wire format itself. Encode/Decode are pure functions;
//     Decode bounds every declared string length before reading it.
//   - codec: Codec[payment.Payment] implementations (Binary, JSON, Msgpack,
//     CBOR, Protobuf) and a size-limiting wrapper.
//   - Provider: byte store with TTL (e.g. Ristretto, BigCache, Redis).
//   - Store: keyed payment storage over a Provider. Entries that no longer
//     decode are deleted on read and reported through Hooks.
//
// Keys:
//
//	payment:<ns>:<id>     - ids up to 200 bytes
//	payment:<ns>:#<hash>  - longer ids (sha256 prefix)
//
// Usage:
//
//	st, _ := paywire.New(paywire.Options{Namespace: "ledger", Provider: prov})
//	_ = st.Put(ctx, "tx-1", payment.Payment{From: "Bob", To: "Alice", Amount: 1000}, 0)
//	p, ok, err := st.Get(ctx, "tx-1")
package paywire
