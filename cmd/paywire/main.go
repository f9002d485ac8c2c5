// Command paywire encodes a sample payment, decodes it back and prints both,
// then stores it through a ristretto-backed Store and reads it again.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/paywire"
	pwzap "github.com/unkn0wn-root/paywire/log/zap"
	"github.com/unkn0wn-root/paywire/payment"
	"github.com/unkn0wn-root/paywire/provider/ristretto"
)

func main() {
	zl, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(context.Background(), zl); err != nil {
		zl.Error("paywire demo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, zl *zap.Logger) error {
	p := payment.Payment{From: "Bob", To: "Alice", Amount: 1000}

	encoded, err := payment.Encode(p)
	if err != nil {
		return err
	}
	decoded, err := payment.Decode(encoded)
	fmt.Printf("encoded value is %v\n", encoded)
	fmt.Printf("decoded value is %+v (err=%v)\n", decoded, err)
	if err != nil {
		return err
	}

	prov, err := ristretto.New(ristretto.Config{NumCounters: 1e4, MaxCost: 1 << 20, BufferItems: 64})
	if err != nil {
		return err
	}
	st, err := paywire.New(paywire.Options{
		Namespace: "demo",
		Provider:  prov,
		Logger:    pwzap.New(zl),
	})
	if err != nil {
		return err
	}
	defer func() { _ = st.Close(ctx) }()

	id := ksuid.New().String()
	if err := st.Put(ctx, id, p, 0); err != nil {
		return err
	}
	got, ok, err := st.Get(ctx, id)
	if err != nil {
		return err
	}
	zl.Info("stored payment read back", zap.String("id", id), zap.Bool("hit", ok), zap.Any("payment", got))
	return nil
}
