package template

import (
	"fmt"
	"strings"
)

// UnsupportedLanguageError is returned when a document is requested in a
// language the domain does not declare.
type UnsupportedLanguageError struct {
	Language  string
	Supported []string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("language %q is not supported by this domain (supported: %s)",
		e.Language, strings.Join(e.Supported, ", "))
}

// RenderError signals an internal-consistency fault: a placeholder reached
// rendering without a binding even though the config passed validation. It
// means the validator and the selector have diverged and is never silently
// recovered.
type RenderError struct {
	Category string
	Variable string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render fault in category %q: placeholder %q has no binding", e.Category, e.Variable)
}

// InvalidMixError is returned for malformed language-mix specifications.
type InvalidMixError struct {
	Reason string
}

func (e *InvalidMixError) Error() string {
	return "invalid language mix: " + e.Reason
}
