package sim

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/lixenwraith/magic-lab/spell"
)

func TestLogHandlerRecordsCasts(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	o, _, _ := newTestOrchestrator(t, nil)
	o.Register(NewLogHandler(log))
	if err := o.Cast(spell.Burst); err != nil {
		t.Fatalf("Cast: %v", err)
	}
	o.Frame(16)

	out := buf.String()
	if !strings.Contains(out, "EventSpellCast") || !strings.Contains(out, "EventEffectSpawned") {
		t.Errorf("Expected cast and effect events in log, got %q", out)
	}
}

func TestLogHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	o, _, _ := newTestOrchestrator(t, nil)
	o.Register(NewLogHandler(log))
	o.Cast(spell.Burst)
	o.Frame(16)

	if buf.Len() != 0 {
		t.Errorf("Expected debug events filtered at info, got %q", buf.String())
	}
}
