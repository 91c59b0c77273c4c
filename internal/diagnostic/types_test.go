package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddInfo(CodeAncestorAdded, "added PSA", "PSA", "")
	d.AddWarning(CodeDuplicate, "selected twice", "PSAW", "variants[2]")
	assert.False(t, d.HasErrors())

	var other Diagnostics
	other.AddError(CodeInvalidVariant, "soft keys are not supported", "DS", "variants[0]")
	other.AddError(CodeEmptySelection, "no variants selected", "", "")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.Len(t, d.All(), 4)
	assert.Equal(t, DiagnosticError, d.All()[0].Severity)
	assert.EqualError(t, d.Error(),
		"variants[0] [DS]: [invalid-variant] soft keys are not supported; [empty-selection] no variants selected")
}

func TestDiagnosticSeverity_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
