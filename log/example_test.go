package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/vcalc/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout,
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	logger.Warn("program loaded", slog.String("file", "sq.vc"))
	// Output:
	// level=WARN msg="program loaded" file=sq.vc
}

func Example_levels() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelWarn),
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message", slog.String("key", "value"))
	// Output:
	// level=WARN msg="warning message" key=value
}

func Example_jsonFormat() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatJSON),
		log.WithLevel(log.LevelTrace),
		log.WithTimeLayout("none"))

	logger.Trace("call", slog.String("function", "sq"), slog.Int("depth", 1))
	// Output:
	// {"level":"TRACE","msg":"call","function":"sq","depth":1}
}

func Example_withAttributes() {
	logger := log.Make(os.Stdout,
		log.WithPretty(false),
		log.WithTimeLayout("none")).
		With(slog.String("label", "<shell>"))

	logger.Error("evaluation failed")
	// Output:
	// level=ERROR msg="evaluation failed" label=<shell>
}

func Example_withContext() {
	type requestIDKey struct{}

	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-789")

	logger := log.Make(os.Stderr, log.WithLevel(log.LevelDebug))
	logger.DebugContext(ctx, "request details", slog.String("method", "POST"))
}
