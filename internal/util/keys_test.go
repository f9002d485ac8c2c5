package util

import (
	"strings"
	"testing"
)

func TestStorageKey(t *testing.T) {
	if got := StorageKey("ledger", "tx-1"); got != "payment:ledger:tx-1" {
		t.Fatalf("got %q", got)
	}
	edge := strings.Repeat("a", MaxRawIDLen)
	if got := StorageKey("ns", edge); got != "payment:ns:"+edge {
		t.Fatalf("id at limit should be verbatim")
	}
	a := StorageKey("ns", edge+"a")
	b := StorageKey("ns", edge+"b")
	if a == b || !strings.HasPrefix(a, "payment:ns:#") || len(a) != len("payment:ns:#")+32 {
		t.Fatalf("unexpected hashed keys %q %q", a, b)
	}
	if a != StorageKey("ns", edge+"a") {
		t.Fatalf("hashed key not deterministic")
	}
}
