package paywire

import (
	"context"
	"errors"
	"time"

	c "github.com/unkn0wn-root/paywire/codec"
	"github.com/unkn0wn-root/paywire/internal/util"
	"github.com/unkn0wn-root/paywire/payment"
	pr "github.com/unkn0wn-root/paywire/provider"
)

type store struct {
	ns             string
	provider       pr.Provider
	codec          c.Codec[payment.Payment]
	log            Logger
	hooks          Hooks
	enabled        bool
	defaultTTL     time.Duration
	computeSetCost SetCostFunc
}

var _ Store = (*store)(nil)

func newStore(opts Options) (*store, error) {
	if opts.Provider == nil {
		return nil, ErrNoProvider
	}
	if opts.Namespace == "" {
		return nil, ErrNoNamespace
	}

	s := &store{
		ns:       opts.Namespace,
		provider: opts.Provider,
		enabled:  !opts.Disabled,
	}

	// defaults
	if opts.Codec != nil {
		s.codec = opts.Codec
	} else {
		s.codec = c.Binary{}
	}
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	s.defaultTTL = coalesce[time.Duration](opts.DefaultTTL, defaultTTL)
	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = encodedLenCost
	}

	return s, nil
}

func (s *store) Enabled() bool { return s.enabled }

func (s *store) Close(ctx context.Context) error {
	if s.provider != nil {
		return s.provider.Close(ctx)
	}
	return nil
}

// Put validates p before encoding: the binary encoder accepts fields the
// decoder would reject, and such an entry could never be read back.
func (s *store) Put(ctx context.Context, id string, p payment.Payment, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if id == "" {
		return ErrEmptyID
	}
	if err := p.Validate(); err != nil {
		return &StoreError{Op: "put", ID: id, Err: err}
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	raw, err := s.codec.Encode(p)
	if err != nil {
		return &StoreError{Op: "put", ID: id, Err: err}
	}
	k := s.key(id)
	ok, err := s.provider.Set(ctx, k, raw, s.computeSetCost(k, raw), ttl)
	if err != nil {
		s.hooks.ProviderError("set", k, err)
		return &StoreError{Op: "put", ID: id, Err: err}
	}
	if !ok {
		s.hooks.ProviderSetRejected(k)
		s.log.Debug("put rejected by provider (pressure)", Fields{"id": id})
	}
	return nil
}

func (s *store) Get(ctx context.Context, id string) (payment.Payment, bool, error) {
	if !s.enabled {
		return payment.Payment{}, false, nil
	}
	if id == "" {
		return payment.Payment{}, false, ErrEmptyID
	}
	k := s.key(id)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil {
		s.hooks.ProviderError("get", k, err)
		return payment.Payment{}, false, &StoreError{Op: "get", ID: id, Err: err}
	}
	if !ok {
		return payment.Payment{}, false, nil
	}
	p, err := s.codec.Decode(raw)
	if err != nil {
		kind := payment.KindOf(err)
		s.hooks.DecodeRejected(k, kind)
		s.log.Warn("dropping undecodable entry", Fields{"id": id, "kind": kind.String(), "err": err, "size": len(raw)})
		if derr := s.provider.Del(ctx, k); derr != nil { // self-heal
			s.hooks.ProviderError("del", k, derr)
		}
		return payment.Payment{}, false, nil
	}
	return p, true, nil
}

func (s *store) Delete(ctx context.Context, id string) error {
	if !s.enabled {
		return nil
	}
	if id == "" {
		return ErrEmptyID
	}
	k := s.key(id)
	if err := s.provider.Del(ctx, k); err != nil {
		s.hooks.ProviderError("del", k, err)
		return &StoreError{Op: "delete", ID: id, Err: err}
	}
	s.log.Debug("deleted payment", Fields{"id": id})
	return nil
}

func (s *store) GetMany(ctx context.Context, ids []string) (map[string]payment.Payment, []string, error) {
	out := make(map[string]payment.Payment, len(ids))
	if !s.enabled {
		// if disabled, everything is missing
		missing := make([]string, 0, len(ids))
		missing = append(missing, ids...)
		return out, missing, nil
	}

	var (
		missing []string
		errs    []error
	)
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		p, ok, err := s.Get(ctx, id)
		if err != nil {
			errs = append(errs, err)
		}
		if ok {
			out[id] = p
		} else {
			missing = append(missing, id)
		}
	}
	return out, missing, errors.Join(errs...)
}

func (s *store) key(id string) string {
	// isolate by namespace
	return util.StorageKey(s.ns, id)
}
