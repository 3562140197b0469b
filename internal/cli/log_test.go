package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeprinter/pkg/observability"
	"github.com/matzehuels/treeprinter/pkg/render"
	"github.com/matzehuels/treeprinter/pkg/tree"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	if prog == nil {
		t.Fatal("newProgress() returned nil")
	}

	time.Sleep(10 * time.Millisecond)
	prog.done("Rendered 3 nodes")

	if !strings.Contains(buf.String(), "Rendered 3 nodes (") {
		t.Errorf("progress.done() output = %q, want message with duration", buf.String())
	}
}

func TestWithLogger(t *testing.T) {
	ctx := context.Background()
	logger := log.Default()

	ctxWithLogger := withLogger(ctx, logger)

	// Should be able to retrieve the logger
	retrieved := loggerFromContext(ctxWithLogger)
	if retrieved != logger {
		t.Error("loggerFromContext should return the same logger")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should return log.Default() when none set")
	}
}

func TestLoggerFromContextWithValue(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	customLogger := newLogger(&buf, log.InfoLevel)

	ctx = withLogger(ctx, customLogger)
	retrieved := loggerFromContext(ctx)

	if retrieved != customLogger {
		t.Error("loggerFromContext should return the custom logger")
	}

	// Verify it works by logging
	retrieved.Info("test")
	if buf.Len() == 0 {
		t.Error("custom logger should write to buffer")
	}
}

func TestSetVerboseLogsRenderEvents(t *testing.T) {
	defer observability.Reset()

	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.SetVerbose(true)

	root := tree.New("R").Add(tree.New("A"), tree.New("BB"))
	if _, err := render.New().Sprint(context.Background(), root); err != nil {
		t.Fatalf("Sprint: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"render start", "layer", "render done", "rows=4"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug log does not contain %q:\n%s", want, out)
		}
	}

	buf.Reset()
	c.SetVerbose(false)
	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug output after SetVerbose(false): %q", buf.String())
	}
}

func TestLogHooksFailure(t *testing.T) {
	var buf bytes.Buffer
	h := &logHooks{logger: newLogger(&buf, log.DebugLevel)}

	h.OnLoadComplete(context.Background(), "tree.json", 0, time.Millisecond, stderrors.New("boom"))
	h.OnRenderComplete(context.Background(), "id", 2, time.Millisecond, stderrors.New("pipe closed"))

	for _, want := range []string{"load failed", "boom", "render failed", "pipe closed"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log does not contain %q:\n%s", want, buf.String())
		}
	}
}
