package slogx

import (
	"context"
	"log/slog"
	"time"

	slogctx "github.com/veqryn/slog-context"
)

// NewContextValueExtractor adds the value stored under contextKey, when present, to
// every record logged with that context.
func NewContextValueExtractor(contextKey interface{}, fieldKey string) slogctx.AttrExtractor {
	return func(ctx context.Context, recordT time.Time, recordLvl slog.Level, recordMsg string) []slog.Attr {
		defer func() {
			// Nullify panic to prevent having this hook break a log call
			recover()
		}()

		v := ctx.Value(contextKey)
		if v == nil {
			return nil
		}
		return []slog.Attr{slog.Any(fieldKey, v)}
	}
}
