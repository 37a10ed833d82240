package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdLogger_FiltersByLevel_AndSortsKeys(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatText, App: "pet-hub", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"collection": "pets"}).Info("pet added", map[string]any{"id": 42})

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry should be filtered, got %q", out)
	}
	if !strings.HasPrefix(out, "app=pet-hub collection=pets id=42 level=info msg=pet added ts=") {
		t.Fatalf("unexpected line %q", out)
	}
}

func TestZapLogger_WritesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewZap(zap.New(core)).With(map[string]any{"collection": "owners"})

	l.Warn("corrupt collection", map[string]any{"error": errors.New("bad json")})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["collection"] != "owners" || ctx["error"] != "bad json" {
		t.Fatalf("unexpected context %#v", ctx)
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("nope") != Info {
		t.Fatalf("ParseLevel mismatch")
	}
	if ParseFormat(" JSON ") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("ParseFormat mismatch")
	}
}
