package template

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var langCodeRE = regexp.MustCompile(`^[a-z]{2}$`)

// LanguageWeight pairs a language code with its probability mass.
type LanguageWeight struct {
	Code   string
	Weight float64
}

// ParseMix parses a CLI-style language mix such as "pl:70,en:30" into an
// ordered distribution. Percentages must sum to 100 within the same ±1%
// tolerance applied to category weights.
func ParseMix(spec string) ([]LanguageWeight, error) {
	var mix []LanguageWeight
	seen := make(map[string]bool)

	for _, pairRaw := range strings.Split(spec, ",") {
		pair := strings.TrimSpace(pairRaw)
		code, percentStr, found := strings.Cut(pair, ":")
		if !found {
			return nil, &InvalidMixError{Reason: fmt.Sprintf("%q is not in lang:percentage form", pair)}
		}

		code = strings.ToLower(strings.TrimSpace(code))
		if !langCodeRE.MatchString(code) {
			return nil, &InvalidMixError{Reason: fmt.Sprintf("%q is not a 2-letter language code", code)}
		}
		if seen[code] {
			return nil, &InvalidMixError{Reason: fmt.Sprintf("duplicate language code %q", code)}
		}
		seen[code] = true

		percent, err := strconv.ParseFloat(strings.TrimSpace(percentStr), 64)
		if err != nil {
			return nil, &InvalidMixError{Reason: fmt.Sprintf("percentage %q for language %q is not numeric", percentStr, code)}
		}
		if percent < 0 || percent > 100 {
			return nil, &InvalidMixError{Reason: fmt.Sprintf("percentage for language %q must be in [0, 100], got %v", code, percent)}
		}

		mix = append(mix, LanguageWeight{Code: code, Weight: percent / 100.0})
	}

	sum := 0.0
	for _, lw := range mix {
		sum += lw.Weight
	}
	if math.Abs(sum-1.0) > 0.01 {
		return nil, &InvalidMixError{Reason: fmt.Sprintf("percentages must sum to 100, got %.1f", sum*100)}
	}

	return mix, nil
}

// LanguageSelector draws languages from a weighted distribution, in the
// same cumulative-walk fashion as category sampling.
type LanguageSelector struct {
	mix []LanguageWeight
	cum []float64
	rng Source
}

// NewLanguageSelector creates a selector over the given distribution.
func NewLanguageSelector(mix []LanguageWeight, rng Source) *LanguageSelector {
	cum := make([]float64, len(mix))
	sum := 0.0
	for i, lw := range mix {
		sum += lw.Weight
		cum[i] = sum
	}
	return &LanguageSelector{mix: mix, cum: cum, rng: rng}
}

// Pick returns the next language code from the distribution.
func (s *LanguageSelector) Pick() string {
	u := s.rng.Float64()
	idx := len(s.cum) - 1
	for i, c := range s.cum {
		if u < c {
			idx = i
			break
		}
	}
	return s.mix[idx].Code
}
