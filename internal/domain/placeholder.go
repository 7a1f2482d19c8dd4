package domain

import "regexp"

// placeholderRE matches {variable} placeholders with identifier-valid
// names. Compiled once; used both at validation time and as the residual
// check after rendering.
var placeholderRE = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ExtractPlaceholders returns the placeholder names appearing in the
// template string, deduplicated, in order of first appearance.
func ExtractPlaceholders(template string) []string {
	matches := placeholderRE.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// HasPlaceholder reports whether the string still contains placeholder
// syntax.
func HasPlaceholder(s string) bool {
	return placeholderRE.MatchString(s)
}
