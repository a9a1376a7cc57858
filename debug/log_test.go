package debug

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogfWritesToLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core).Sugar())
	defer SetLogger(nil)

	Logf("extracted %d declarations from %s\n", 3, "wire.go")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got, want := entries[0].Message, "extracted 3 declarations from wire.go"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSetLoggerNilDiscards(t *testing.T) {
	SetLogger(nil)
	Logf("dropped %s", "message")
}
