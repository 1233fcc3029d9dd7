package loggerx

import (
	"context"
	"io"
	"log/slog"

	"github.com/clinia/clamp/errorx"
	"github.com/clinia/clamp/slogx"
	slogctx "github.com/veqryn/slog-context"
	"go.opentelemetry.io/otel/attribute"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Level  string
	Format string
	// Extractors add attributes taken from the context of each log call.
	Extractors []slogctx.AttrExtractor
}

type Logger struct {
	*slog.Logger
}

// New builds a logger writing to w. Attributes attached with slogctx.Prepend or
// slogctx.Append, and those returned by cfg.Extractors, are added to every record.
func New(w io.Writer, cfg Config) (*Logger, error) {
	var level slog.Level
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, errorx.InvalidArgumentErrorf("invalid log level %q", cfg.Level).WithOriginalError(err)
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch cfg.Format {
	case FormatText, "":
		h = slog.NewTextHandler(w, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, errorx.InvalidArgumentErrorf("invalid log format %q", cfg.Format)
	}

	return &Logger{slog.New(slogctx.NewHandler(h, &slogctx.HandlerOptions{
		Prependers: append([]slogctx.AttrExtractor{slogctx.ExtractPrepended}, cfg.Extractors...),
		Appenders:  []slogctx.AttrExtractor{slogctx.ExtractAppended},
	}))}, nil
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{l.Logger.With(slogx.ErrorAttr(err))}
}

func (l *Logger) Error(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelError, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelWarn, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Info(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelInfo, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Debug(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelDebug, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) WithFields(kvs ...attribute.KeyValue) *Logger {
	lfs := slogx.NewLogFields(kvs...)
	// This is a workaround until we get a nice slog.WithAttrs method - See https://github.com/golang/go/issues/66937#issuecomment-2730350514
	return &Logger{l.Logger.With("", slog.GroupValue(lfs...))}
}
