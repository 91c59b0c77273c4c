package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"node-generator/internal/common"
)

// Diagnostic codes reported while resolving a variant selection.
const (
	CodeInvalidVariant = "invalid-variant"
	CodeDuplicate      = "duplicate-variant"
	CodeAncestorAdded  = "ancestor-added"
	CodeEmptySelection = "empty-selection"
)

// Diagnostics holds all diagnostic information from resolution.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Variant is the variant name this relates to (if any).
	Variant string
	// Entry locates the manifest entry, e.g. "variants[3]" (if any).
	Entry string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, variant, entry string) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, variant, entry))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, variant, entry string) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, variant, entry))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, variant, entry string) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, variant, entry))
}

func newDiagnostic(severity DiagnosticSeverity, code, message, variant, entry string) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		Variant:  variant,
		Entry:    entry,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Entry != "" {
		prefix = append(prefix, d.Entry)
	}

	if d.Variant != "" {
		prefix = append(prefix, "["+d.Variant+"]")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
