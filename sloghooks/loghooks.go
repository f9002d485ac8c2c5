package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/paywire"
	"github.com/unkn0wn-root/paywire/payment"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	DecodeRejectEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	decodeRejectCtr atomic.Uint64
}

var _ paywire.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DecodeRejected(storageKey string, kind payment.ErrorKind) {
	if h.l == nil || !sample(h.opts.DecodeRejectEvery, &h.decodeRejectCtr) {
		return
	}
	h.l.Warn("paywire.decode_rejected",
		"key", h.redact(storageKey),
		"kind", kind.String())
}

func (h *Hooks) ProviderSetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("paywire.provider_set_rejected",
		"key", h.redact(storageKey))
}

func (h *Hooks) ProviderError(op, storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("paywire.provider_error",
		"op", op,
		"key", h.redact(storageKey),
		"err", err)
}
