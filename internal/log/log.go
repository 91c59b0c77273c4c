// Package log holds the process-wide zerolog logger. Log lines carry an
// optional scope taken from the event context and rendered as "[scope]".
package log

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

const scopeFieldName = "scope"

var logger = zerolog.Nop()

type scopeCtxKey struct{}

// WithScope returns a context whose log events are tagged with scope.
func WithScope(ctx context.Context, scope string) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, scope)
}

// ScopeFromCtx returns the scope stored by WithScope.
func ScopeFromCtx(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}

	scope, ok := ctx.Value(scopeCtxKey{}).(string)

	return scope, ok
}

// GetCtxLogger returns the process logger bound to ctx.
func GetCtxLogger(ctx context.Context) zerolog.Logger {
	return logger.With().Ctx(ctx).Logger()
}

// Init configures the process logger to write human-readable lines to out.
func Init(debug bool, out io.Writer) {
	partsOrder := []string{
		zerolog.TimestampFieldName,
		zerolog.LevelFieldName,
		scopeFieldName,
		zerolog.MessageFieldName,
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		PartsOrder: partsOrder,
		FormatPrepare: func(m map[string]any) error {
			formatScopeValue(m)
			return nil
		},
		FieldsExclude: []string{scopeFieldName},
	}

	logger = zerolog.New(consoleWriter).Hook(scopeHook{})
	if debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	logger = logger.With().Timestamp().Logger()
}

func formatScopeValue(vs map[string]any) {
	if scope, ok := vs[scopeFieldName].(string); ok {
		vs[scopeFieldName] = fmt.Sprintf("[%s]", scope)
	} else {
		vs[scopeFieldName] = ""
	}
}

type scopeHook struct{}

func (h scopeHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if scope, ok := ScopeFromCtx(e.GetCtx()); ok {
		e.Str(scopeFieldName, scope)
	}
}
