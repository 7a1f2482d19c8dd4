package domain

import (
	"fmt"
	"strings"
)

// NotFoundError is returned when no configuration source matches the
// requested domain name.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	available := "none"
	if len(e.Available) > 0 {
		available = strings.Join(e.Available, ", ")
	}
	return fmt.Sprintf("domain %q not found (available domains: %s)", e.Name, available)
}

// InvalidConfigError is returned when a domain configuration fails
// structural parsing or semantic validation. Configuration errors are not
// retried; the source file has to be fixed.
type InvalidConfigError struct {
	Domain string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid domain config %q: %s", e.Domain, e.Reason)
}

func invalidf(domain, format string, args ...any) *InvalidConfigError {
	return &InvalidConfigError{Domain: domain, Reason: fmt.Sprintf(format, args...)}
}
