package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit_ScopeAndLevel(t *testing.T) {
	var buf bytes.Buffer

	Init(false, &buf)

	ctx := WithScope(context.Background(), "gen")
	l := GetCtxLogger(ctx)

	l.Debug().Msg("hidden")
	l.Info().Msg("generated")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[gen]")
	assert.Contains(t, out, "generated")

	buf.Reset()
	Init(true, &buf)
	root := GetCtxLogger(context.Background())
	root.Debug().Msg("visible")

	assert.Contains(t, buf.String(), "visible")
	assert.NotContains(t, buf.String(), "[gen]")
}

func TestScopeFromCtx(t *testing.T) {
	_, ok := ScopeFromCtx(context.Background())
	assert.False(t, ok)

	scope, ok := ScopeFromCtx(WithScope(context.Background(), "manifest"))
	assert.True(t, ok)
	assert.Equal(t, "manifest", scope)
}
