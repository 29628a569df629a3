package chromakey

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("k", "v")}).(nopHandler); !ok {
		t.Error("WithAttrs() did not return a nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup() did not return a nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) stored nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore a disabled logger")
	}
}

func TestCubeRebuildIsLogged(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	k := NewCubeKeyer()
	k.Prepare(DefaultParams())
	k.Prepare(DefaultParams())

	if n := strings.Count(buf.String(), "building colour cube"); n != 1 {
		t.Errorf("cube build logged %d times, want 1; log:\n%s", n, buf.String())
	}
}

func TestDroppedFieldIsLogged(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	ParseUpdate(map[string]any{"hueRange": "green", "opacity": 1})

	out := buf.String()
	if !strings.Contains(out, "dropping malformed parameter") || !strings.Contains(out, "key=hueRange") {
		t.Errorf("missing malformed-field record; log:\n%s", out)
	}
	if !strings.Contains(out, "ignoring unknown parameter") || !strings.Contains(out, "key=opacity") {
		t.Errorf("missing unknown-field record; log:\n%s", out)
	}
}

func TestWarnLevelHidesDebug(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	NewCubeKeyer().Prepare(DefaultParams())
	if buf.Len() != 0 {
		t.Errorf("debug records leaked at warn level:\n%s", buf.String())
	}
}

func TestLoggerSwapWhileKeying(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	fg := SolidFrame(Size{Width: 64, Height: 64}, Green.Opaque())
	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := NewPipeline()
			if err != nil {
				t.Error(err)
				return
			}
			if _, err := p.Process(fg); err != nil {
				t.Error(err)
			}
		}()
	}
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}

	wg.Wait()
}
