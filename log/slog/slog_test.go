//go:build go1.21

package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/paywire"
)

func TestSlogLoggerOrdersFields(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))}

	l.Error("boom", paywire.Fields{"z": 1, "a": "x"})

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "msg=boom") {
		t.Fatalf("unexpected output %q", out)
	}
	if strings.Index(out, "a=x") > strings.Index(out, "z=1") {
		t.Fatalf("fields not sorted: %q", out)
	}
}
