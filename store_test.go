package paywire

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	c "github.com/unkn0wn-root/paywire/codec"
	"github.com/unkn0wn-root/paywire/payment"
	pr "github.com/unkn0wn-root/paywire/provider"
)

type memEntry struct {
	v   []byte
	exp time.Time // zero => no TTL
}

type memProvider struct {
	m      map[string]memEntry
	reject bool  // Set returns ok=false
	getErr error // Get fails
}

var _ pr.Provider = (*memProvider)(nil)

func newMemProvider() *memProvider { return &memProvider{m: make(map[string]memEntry)} }

func (p *memProvider) Get(_ context.Context, key string) ([]byte, bool, error) {
	if p.getErr != nil {
		return nil, false, p.getErr
	}
	e, ok := p.m[key]
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		delete(p.m, key)
		return nil, false, nil
	}
	return e.v, true, nil
}

func (p *memProvider) Set(_ context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	if p.reject {
		return false, nil
	}
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	p.m[key] = memEntry{v: value, exp: exp}
	return true, nil
}

func (p *memProvider) Del(_ context.Context, key string) error { delete(p.m, key); return nil }
func (p *memProvider) Close(_ context.Context) error           { return nil }

type recHooks struct {
	mu       sync.Mutex
	rejected map[string]payment.ErrorKind
	setRej   []string
	provErrs []string
}

func (h *recHooks) DecodeRejected(k string, kind payment.ErrorKind) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rejected == nil {
		h.rejected = map[string]payment.ErrorKind{}
	}
	h.rejected[k] = kind
}
func (h *recHooks) ProviderSetRejected(k string) {
	h.mu.Lock()
	h.setRej = append(h.setRej, k)
	h.mu.Unlock()
}
func (h *recHooks) ProviderError(op, _ string, _ error) {
	h.mu.Lock()
	h.provErrs = append(h.provErrs, op)
	h.mu.Unlock()
}

func newTestStore(t *testing.T, ns string, mp pr.Provider, optsOpt func(*Options)) Store {
	t.Helper()
	opts := Options{
		Namespace: ns,
		Provider:  mp,
	}
	if optsOpt != nil {
		optsOpt(&opts)
	}
	st, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	return st
}

func mustImpl(t *testing.T, s Store) *store {
	t.Helper()
	impl, ok := s.(*store)
	if !ok {
		t.Fatalf("unexpected concrete type for Store")
	}
	return impl
}

var bob = payment.Payment{From: "Bob", To: "Alice", Amount: 1000}

func TestNewValidatesOptions(t *testing.T) {
	if _, err := New(Options{Namespace: "x"}); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}
	if _, err := New(Options{Provider: newMemProvider()}); !errors.Is(err, ErrNoNamespace) {
		t.Fatalf("expected ErrNoNamespace, got %v", err)
	}

	impl := mustImpl(t, newTestStore(t, "ledger", newMemProvider(), nil))
	if _, ok := impl.codec.(c.Binary); !ok {
		t.Fatalf("default codec should be Binary, got %T", impl.codec)
	}
	if impl.defaultTTL != defaultTTL {
		t.Fatalf("default TTL=%v", impl.defaultTTL)
	}
	if got := impl.computeSetCost("k", make([]byte, 24)); got != 24 {
		t.Fatalf("default cost=%d want 24", got)
	}
}

func TestPutGetDelete(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	st := newTestStore(t, "ledger", mp, nil)

	if _, ok, err := st.Get(ctx, "tx-1"); err != nil || ok {
		t.Fatalf("Get miss expected, ok=%v err=%v", ok, err)
	}
	if err := st.Put(ctx, "tx-1", bob, 0); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// stored bytes are the canonical wire format
	raw, ok, _ := mp.Get(ctx, "payment:ledger:tx-1")
	if !ok || len(raw) != 24 {
		t.Fatalf("expected 24 raw bytes under payment:ledger:tx-1, ok=%v len=%d", ok, len(raw))
	}

	got, ok, err := st.Get(ctx, "tx-1")
	if err != nil || !ok || got != bob {
		t.Fatalf("Get after put: ok=%v err=%v got=%+v", ok, err, got)
	}

	if err := st.Delete(ctx, "tx-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := st.Get(ctx, "tx-1"); ok {
		t.Fatalf("Get after delete should miss")
	}
}

func TestPutRejectsUndecodablePayment(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	st := newTestStore(t, "ledger", mp, nil)

	err := st.Put(ctx, "long", payment.Payment{From: strings.Repeat("x", payment.MaxLen+1)}, 0)
	if !errors.Is(err, payment.ErrStringTooLong) {
		t.Fatalf("expected ErrStringTooLong, got %v", err)
	}
	var se *StoreError
	if !errors.As(err, &se) || se.Op != "put" || se.ID != "long" {
		t.Fatalf("expected StoreError{put,long}, got %#v", err)
	}
	if len(mp.m) != 0 {
		t.Fatalf("nothing should be written")
	}

	if err := st.Put(ctx, "", bob, 0); !errors.Is(err, ErrEmptyID) {
		t.Fatalf("expected ErrEmptyID, got %v", err)
	}
}

// TestSelfHealOnCorrupt ensures undecodable provider bytes are deleted,
// reported, and missed.
func TestSelfHealOnCorrupt(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		raw  []byte
		kind payment.ErrorKind
	}{
		{"truncated", []byte{0, 0, 0, 3, 'B'}, payment.KindInsufficientData},
		{"trailing", append(make([]byte, 16), 0xAA), payment.KindTrailingData},
		{"too-long", []byte{0, 0, 0x10, 0}, payment.KindStringTooLong},
		{"utf8", []byte{0, 0, 0, 1, 0xFF, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, payment.KindUTF8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mp := newMemProvider()
			hooks := &recHooks{}
			st := newTestStore(t, "ledger", mp, func(o *Options) { o.Hooks = hooks })
			impl := mustImpl(t, st)

			k := impl.key(tc.name)
			if ok, err := mp.Set(ctx, k, tc.raw, 1, time.Minute); err != nil || !ok {
				t.Fatalf("inject corrupt: ok=%v err=%v", ok, err)
			}

			if _, ok, err := st.Get(ctx, tc.name); err != nil || ok {
				t.Fatalf("Get on corrupt should miss, ok=%v err=%v", ok, err)
			}
			if _, ok, _ := mp.Get(ctx, k); ok {
				t.Fatalf("corrupt entry was not deleted by self-heal")
			}
			if got := hooks.rejected[k]; got != tc.kind {
				t.Fatalf("hook kind=%v want %v", got, tc.kind)
			}
		})
	}
}

func TestProviderSetRejected(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	mp.reject = true
	hooks := &recHooks{}
	st := newTestStore(t, "ledger", mp, func(o *Options) { o.Hooks = hooks })

	if err := st.Put(ctx, "tx", bob, 0); err != nil {
		t.Fatalf("rejected Set is not an error: %v", err)
	}
	if len(hooks.setRej) != 1 || hooks.setRej[0] != "payment:ledger:tx" {
		t.Fatalf("expected one set rejection, got %v", hooks.setRej)
	}
}

func TestProviderGetError(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	boom := errors.New("boom")
	mp.getErr = boom
	hooks := &recHooks{}
	st := newTestStore(t, "ledger", mp, func(o *Options) { o.Hooks = hooks })

	_, ok, err := st.Get(ctx, "tx")
	if ok || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped provider error, ok=%v err=%v", ok, err)
	}
	if len(hooks.provErrs) != 1 || hooks.provErrs[0] != "get" {
		t.Fatalf("expected get provider error hook, got %v", hooks.provErrs)
	}
}

func TestGetMany(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, "ledger", newMemProvider(), nil)

	items := map[string]payment.Payment{
		"a": {From: "A", To: "B", Amount: 1},
		"c": {From: "C", To: "D", Amount: 3},
	}
	for id, p := range items {
		if err := st.Put(ctx, id, p, 0); err != nil {
			t.Fatalf("Put %s: %v", id, err)
		}
	}

	got, missing, err := st.GetMany(ctx, []string{"c", "b", "a", "c", "d"})
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}
	if len(got) != 2 || got["a"] != items["a"] || got["c"] != items["c"] {
		t.Fatalf("unexpected hits %v", got)
	}
	if len(missing) != 2 || missing[0] != "b" || missing[1] != "d" {
		t.Fatalf("expected missing [b d], got %v", missing)
	}
}

func TestDisabledStore(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	st := newTestStore(t, "ledger", mp, func(o *Options) { o.Disabled = true })

	if st.Enabled() {
		t.Fatalf("expected disabled")
	}
	if err := st.Put(ctx, "tx", bob, 0); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if len(mp.m) != 0 {
		t.Fatalf("disabled store wrote to provider")
	}
	_, missing, _ := st.GetMany(ctx, []string{"tx"})
	if len(missing) != 1 {
		t.Fatalf("disabled GetMany should report all missing")
	}
}

func TestAlternativeCodec(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	st := newTestStore(t, "ledger", mp, func(o *Options) { o.Codec = c.JSON{} })

	if err := st.Put(ctx, "tx", bob, 0); err != nil {
		t.Fatalf("Put: %v", err)
	}
	raw, _, _ := mp.Get(ctx, "payment:ledger:tx")
	if !strings.HasPrefix(string(raw), "{") {
		t.Fatalf("expected JSON bytes, got %q", raw)
	}
	if got, ok, err := st.Get(ctx, "tx"); err != nil || !ok || got != bob {
		t.Fatalf("Get: ok=%v err=%v got=%+v", ok, err, got)
	}
}

func TestLongIDsAreHashed(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	st := newTestStore(t, "ledger", mp, nil)

	id := strings.Repeat("i", 500)
	if err := st.Put(ctx, id, bob, 0); err != nil {
		t.Fatalf("Put: %v", err)
	}
	for k := range mp.m {
		if !strings.HasPrefix(k, "payment:ledger:#") || len(k) != len("payment:ledger:#")+32 {
			t.Fatalf("unexpected key %q", k)
		}
	}
	if got, ok, _ := st.Get(ctx, id); !ok || got != bob {
		t.Fatalf("Get via hashed key failed")
	}
}
