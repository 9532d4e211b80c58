package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"survey-labeler/internal/common"
)

// Diagnostics holds all diagnostic information from a processing pass.
type Diagnostics struct {
	Errors   []Diagnostic `json:"errors,omitempty"`
	Warnings []Diagnostic `json:"warnings,omitempty"`
	Infos    []Diagnostic `json:"infos,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity `json:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Statement is the syntax statement keyword this relates to (if any).
	Statement string `json:"statement,omitempty"`
	// Variable identifies which variable or column this relates to (if any).
	Variable string `json:"variable,omitempty"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `json:"suggestions,omitempty"`
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	for _, sev := range []Severity{SeverityInfo, SeverityWarning, SeverityError} {
		if sev.String() == string(text) {
			*s = sev
			return nil
		}
	}

	return fmt.Errorf("unknown severity %q", text)
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, statement, variable string) {
	d.Add(Diagnostic{
		Severity:  SeverityError,
		Code:      code,
		Message:   message,
		Statement: statement,
		Variable:  variable,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, statement, variable string) {
	d.Add(Diagnostic{
		Severity:  SeverityWarning,
		Code:      code,
		Message:   message,
		Statement: statement,
		Variable:  variable,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, statement, variable string) {
	d.Add(Diagnostic{
		Severity:  SeverityInfo,
		Code:      code,
		Message:   message,
		Statement: statement,
		Variable:  variable,
	})
}

// Add files a prepared diagnostic under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
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

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)
	all = append(all, d.Infos...)

	return all
}

// WithCode returns the diagnostics of any severity carrying the given code.
func (d *Diagnostics) WithCode(code string) []Diagnostic {
	var found []Diagnostic

	for _, diag := range d.All() {
		if diag.Code == code {
			found = append(found, diag)
		}
	}

	return found
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Statement != "" {
		prefix = append(prefix, "["+d.Statement+"]")
	}

	if d.Variable != "" {
		prefix = append(prefix, d.Variable)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
