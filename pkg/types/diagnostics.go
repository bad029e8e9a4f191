package types

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// -----------------------------------------------------------------------------
// Binder Diagnostics
// -----------------------------------------------------------------------------
//
// Binding never fails as a whole: properties the binder cannot map are skipped
// and recorded here. The report collects ALL issues found during one bind
// call, not just the first, so a caller can audit exactly which properties
// made it into the editing surface.

// Severity classifies how serious a diagnostic issue is.
type Severity int

const (
	SevInfo    Severity = iota // informational (unusual but handled)
	SevWarning                 // property skipped or metadata ignored
)

// String implements the Stringer interface for Severity.
func (s Severity) String() string {
	if s == SevInfo {
		return "INFO"
	}
	return "WARNING"
}

// Diagnostic records a single issue found while binding one property.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Property string   `json:"property"`
	GoType   string   `json:"go_type,omitempty"`
	Msg      string   `json:"msg"`
}

// DiagnosticReport collects all diagnostics produced by one bind call.
type DiagnosticReport struct {
	Diagnostics []Diagnostic `json:"diagnostics"`

	// Summary statistics.
	Bound   int `json:"bound"`   // descriptors produced
	Skipped int `json:"skipped"` // writable properties with no editor kind
}

// NewDiagnosticReport creates an empty report.
func NewDiagnosticReport() *DiagnosticReport {
	return &DiagnosticReport{}
}

// Add appends a diagnostic to the report.
func (r *DiagnosticReport) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// HasIssues reports whether any diagnostics were collected.
func (r *DiagnosticReport) HasIssues() bool {
	return r != nil && len(r.Diagnostics) > 0
}

// ToJSON renders the report for logs or tooling.
func (r *DiagnosticReport) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// String renders a one-line-per-issue text summary.
func (r *DiagnosticReport) String() string {
	if r == nil {
		return "<nil report>"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "bound=%d skipped=%d\n", r.Bound, r.Skipped)
	for _, d := range r.Diagnostics {
		fmt.Fprintf(&sb, "[%s] %s: %s\n", d.Severity, d.Property, d.Msg)
	}
	return sb.String()
}
