package main

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunLogsTransitions(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	if err := run(zap.New(core), "patrol.tengo", 240); err != nil {
		t.Fatalf("run: %v", err)
	}
	if logs.FilterMessage("transition").Len() == 0 {
		t.Fatalf("expected transitions to be logged")
	}
	finished := logs.FilterMessage("replay finished").All()
	if len(finished) != 1 {
		t.Fatalf("finished entries = %d", len(finished))
	}
	if got := finished[0].ContextMap()["ticks"]; got != uint64(240) {
		t.Fatalf("ticks = %v, want 240", got)
	}
}

func TestRunUnknownScript(t *testing.T) {
	if err := run(zap.NewNop(), "missing.tengo", 1); err == nil {
		t.Fatalf("expected an error for a missing script")
	}
}
