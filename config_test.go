package depot

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	w := Factory.NewWorld(
		WithGenerator(Factory.NewGenerator()),
		WithLogger(NewSlogLogger(slog.New(handler)).With("world", "test")),
	)

	e := w.Create()
	w.Destroy(e)

	out := buf.String()
	for _, want := range []string{"storage created", "type=depot.Entity", "entity destroyed", "world=test"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSlogLoggerFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	w := Factory.NewWorld(WithLogger(NewSlogLogger(slog.New(handler))))
	w.Create()
	if buf.Len() != 0 {
		t.Errorf("debug records leaked at info level: %s", buf.String())
	}
}

func TestConfigDefaults(t *testing.T) {
	defer Config.SetLogger(nil)
	defer Config.SetGenerator(nil)

	gen := Factory.NewGenerator()
	gen.Reset(41)
	Config.SetGenerator(gen)
	var messages []string
	Config.SetLogger(recordingLogger{messages: &messages})

	w := Factory.NewWorld()
	if got := w.Create(); got != 42 {
		t.Errorf("Create() = %d, want 42 from the configured generator", got)
	}
	if len(messages) == 0 {
		t.Error("configured logger received nothing")
	}

}

func TestDefaultLoggerIsBark(t *testing.T) {
	Config.SetLogger(nil)
	l, ok := Config.defaultLogger().(slogLogger)
	if !ok || l.l == nil {
		t.Fatalf("default logger = %#v, want a bark-backed slogLogger", Config.defaultLogger())
	}
	if l, ok := NewSlogLogger(nil).(slogLogger); !ok || l.l == nil {
		t.Error("NewSlogLogger(nil) should fall back to bark's depot logger")
	}
}
