package paywire

import "github.com/unkn0wn-root/paywire/payment"

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The store calls them on hot paths.
type Hooks interface {
	// A stored entry failed to decode and was deleted on read.
	DecodeRejected(storageKey string, kind payment.ErrorKind)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)

	// Provider returned an error. op ∈ {"get", "set", "del"}
	ProviderError(op, storageKey string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) DecodeRejected(string, payment.ErrorKind) {}
func (NopHooks) ProviderSetRejected(string)               {}
func (NopHooks) ProviderError(string, string, error)      {}
