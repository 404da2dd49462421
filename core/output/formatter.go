// Package output provides output formatting interfaces.
// This package produces human and machine-readable validation reports.
package output

import (
	"io"
	"sort"

	"goalgraph/core/validation"
	goalerrors "goalgraph/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *ValidationResult) error
}

// ValidationResult is everything a formatter needs for one run
type ValidationResult struct {
	*validation.Result

	// Metadata contains execution context
	Metadata Metadata
}

// Metadata contains execution context
type Metadata struct {
	// RunID identifies the CLI invocation
	RunID string `json:"run_id,omitempty"`

	// Sources are the goal files that were read
	Sources []string `json:"sources,omitempty"`

	// Timestamp is when validation ran, RFC 3339
	Timestamp string `json:"timestamp,omitempty"`

	// Version is the tool version
	Version string `json:"version,omitempty"`
}

// Options control the human-readable formats
type Options struct {
	NoColor    bool
	ShowDepths bool
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding the built-in formatters
func NewRegistry(opts Options) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(NewCLIFormatter(opts))
	r.Register(NewJSONFormatter())
	r.Register(NewMarkdownFormatter(opts))
	return r
}

// Register adds or replaces a formatter
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format
func (r *Registry) Get(format Format) (Formatter, error) {
	f, ok := r.formatters[format]
	if !ok {
		return nil, goalerrors.Newf(goalerrors.TypeNotSupported, "unknown output format %q", format).
			WithContext("available", r.Formats())
	}
	return f, nil
}

// Formats lists registered formats in name order
func (r *Registry) Formats() []Format {
	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
