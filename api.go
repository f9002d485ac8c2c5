package paywire

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/paywire/codec"
	"github.com/unkn0wn-root/paywire/payment"
	pr "github.com/unkn0wn-root/paywire/provider"
)

// SetCostFunc returns the cost passed to Provider.Set for an encoded entry.
type SetCostFunc func(storageKey string, raw []byte) int64

// Store keeps encoded payments in a byte provider, keyed by payment id.
type Store interface {
	Enabled() bool
	Close(context.Context) error

	Put(ctx context.Context, id string, p payment.Payment, ttl time.Duration) error
	Get(ctx context.Context, id string) (p payment.Payment, ok bool, err error)
	Delete(ctx context.Context, id string) error

	// GetMany returns hits by id plus the ids that missed, in request order.
	GetMany(ctx context.Context, ids []string) (found map[string]payment.Payment, missing []string, err error)
}

// Options tune the behavior of the store.
// Only Namespace and Provider are required; others have sensible defaults.
type Options struct {
	// Required
	Namespace string // logical namespace to avoid collisions. e.g. "ledger", "refunds"
	Provider  pr.Provider

	Codec          c.Codec[payment.Payment] // nil => codec.Binary
	Logger         Logger                   // nil => NopLogger
	Hooks          Hooks                    // nil => NopHooks
	DefaultTTL     time.Duration            // 0 => 24h
	Disabled       bool                     // default false (enabled)
	ComputeSetCost SetCostFunc              // default: encoded length
}

func New(opts Options) (Store, error) {
	return newStore(opts)
}
