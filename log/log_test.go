package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	logger := Make(&bytes.Buffer{})

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.Level())
	}

	if logger.Format() != FormatText {
		t.Errorf("expected default format text, got %v", logger.Format())
	}

	if logger.caller {
		t.Error("expected caller disabled by default")
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelDebug))
	logger.Debug("debug message")

	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged at Debug level")
	}

	buf.Reset()

	logger = Make(&buf, WithLevel(LevelError))
	logger.Info("info message")

	if buf.Len() > 0 {
		t.Error("info message logged at Error level")
	}

	logger.Error("error message")

	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_Trace_RendersTraceLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace), WithTimeLayout("none"))
	logger.Trace("fine detail")

	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Errorf("expected TRACE level, got %q", buf.String())
	}
}

func TestLogger_Make_WithCaller_IncludesSource(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithCaller(true)).Info("test message")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("caller is not this file: %q", buf.String())
	}

	buf.Reset()
	Make(&buf, WithCaller(false)).Info("test message")

	if strings.Contains(buf.String(), "source") {
		t.Error("caller info included when disabled")
	}
}

func TestLogger_Make_WithFormat_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON))
	logger.Info("test message", slog.String("key", "value"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if result["msg"] != "test message" {
		t.Errorf("expected msg=test message, got %v", result["msg"])
	}

	if result["key"] != "value" {
		t.Errorf("expected key=value, got %v", result["key"])
	}

	if result["level"] != "INFO" {
		t.Errorf("expected level=INFO, got %v", result["level"])
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithTimeLayout("none")).
		With(slog.String("file", "in.hxx"))
	logger.Warn("unknown placeholder")

	out := buf.String()
	if !strings.Contains(out, "file=in.hxx") {
		t.Errorf("expected attribute in %q", out)
	}
}

func TestLogger_Wrap_OverridesConfiguration(t *testing.T) {
	var a, b bytes.Buffer

	base := Make(&a, WithLevel(LevelError))
	wrapped := base.Wrap(WithOutput(&b), WithLevel(LevelDebug))

	wrapped.Debug("to b")
	base.Debug("dropped")

	if a.Len() != 0 {
		t.Errorf("base logger wrote %q", a.String())
	}

	if !strings.Contains(b.String(), "to b") {
		t.Errorf("wrapped logger missing output: %q", b.String())
	}

	if base.Level() != LevelError {
		t.Error("Wrap mutated the base logger")
	}
}

func TestLogger_ZeroValue_IsNoop(t *testing.T) {
	var logger Logger

	logger.Info("nothing")
	logger.ErrorContext(context.Background(), "nothing")

	if logger.With(slog.Int("n", 1)).Logger != nil {
		t.Error("With on zero logger should stay zero")
	}

	if logger.Level() != DefaultLevel {
		t.Error("zero logger should report default level")
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	var (
		buf bytes.Buffer
		mu  sync.Mutex
		wg  sync.WaitGroup
	)

	logger := Make(writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()

		return buf.Write(p)
	}))

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			logger.With(slog.Int("worker", i)).Info("tick")
		}()
	}

	wg.Wait()

	if got := strings.Count(buf.String(), "tick"); got != 8 {
		t.Errorf("expected 8 lines, got %d", got)
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
