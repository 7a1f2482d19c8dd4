package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Olga-Zydziak/pdf-generator/internal/domain"
)

// Selection is the result of rendering one document. It owns no external
// resources and is discarded after the renderer consumes it.
type Selection struct {
	Domain   string
	Category string
	Language string
	Template string
	Text     string
	Bindings map[string]any
}

// Engine renders random documents from a validated domain configuration.
// The cumulative-weight table is built once at construction; every draw
// walks it in the fixed category order of the config.
//
// An Engine is not safe for concurrent use: the Source state advances
// sequentially. Parallel generation should give each worker its own
// Engine with an independently seeded Source.
type Engine struct {
	cfg *domain.Config
	rng Source
	cum []float64
}

// NewEngine creates an Engine bound to the config and random source.
func NewEngine(cfg *domain.Config, rng Source) *Engine {
	cum := make([]float64, len(cfg.Categories))
	sum := 0.0
	for i, cat := range cfg.Categories {
		sum += cat.Weight
		cum[i] = sum
	}
	return &Engine{cfg: cfg, rng: rng, cum: cum}
}

// Render produces one document in the requested language: weighted
// category pick, uniform template pick, uniform variable binding,
// placeholder substitution.
func (e *Engine) Render(language string) (*Selection, error) {
	if !e.cfg.HasLanguage(language) {
		return nil, &UnsupportedLanguageError{Language: language, Supported: e.cfg.Languages}
	}

	cat := e.pickCategory()

	templates := cat.Templates[language]
	idx := e.rng.Intn(len(templates))
	tmpl := templates[idx]

	bindings := make(map[string]any)
	for _, name := range cat.TemplateVars[language][idx] {
		values := cat.FakerVars[name]
		bindings[name] = values[e.rng.Intn(len(values))]
	}

	text, err := substitute(cat, tmpl, bindings)
	if err != nil {
		return nil, err
	}

	return &Selection{
		Domain:   e.cfg.Name,
		Category: cat.Name,
		Language: language,
		Template: tmpl,
		Text:     text,
		Bindings: bindings,
	}, nil
}

// pickCategory draws a uniform value and walks the cumulative weight table
// in category order. A draw beyond the final cumulative sum (possible when
// the weights sum to slightly under 1.0 within tolerance) clamps to the
// last category.
func (e *Engine) pickCategory() *domain.Category {
	u := e.rng.Float64()
	idx := len(e.cum) - 1
	for i, c := range e.cum {
		if u < c {
			idx = i
			break
		}
	}
	return &e.cfg.Categories[idx]
}

func substitute(cat *domain.Category, tmpl string, bindings map[string]any) (string, error) {
	text := tmpl
	for _, name := range domain.ExtractPlaceholders(tmpl) {
		value, ok := bindings[name]
		if !ok {
			return "", &RenderError{Category: cat.Name, Variable: name}
		}
		text = strings.ReplaceAll(text, "{"+name+"}", formatValue(value))
	}
	return text, nil
}

// formatValue renders a faker value in its natural string form. Faker
// pools may mix strings and numbers.
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
