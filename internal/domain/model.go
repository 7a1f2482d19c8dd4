// Package domain loads, validates and caches domain configurations.
//
// A domain is a YAML file describing the kinds of synthetic documents that
// can be generated: weighted categories, per-language template strings and
// pools of candidate values for the {placeholder} variables inside them.
// Configs are parsed with yaml.v3 (declarative decoding only), checked
// against an embedded JSON schema for structure, then semantically
// validated. A validated Config is immutable.
package domain

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// WeightTolerance is the allowed deviation of the category weight sum
// from 1.0.
const WeightTolerance = 0.01

var (
	nameRE     = regexp.MustCompile(`^[a-z_]+$`)
	languageRE = regexp.MustCompile(`^[a-z]{2}$`)
)

// Config is a validated, immutable domain configuration.
type Config struct {
	// Name is the domain identifier, matching ^[a-z_]+$.
	Name string
	// Languages lists the supported language codes in declaration order.
	Languages []string
	// Categories holds the weighted categories in YAML document order.
	// The order is fixed so that weighted sampling is reproducible.
	Categories []Category
}

// Category is one weighted bucket of templates within a domain.
type Category struct {
	Name      string
	Weight    float64
	Templates map[string][]string // language code -> template strings
	FakerVars map[string][]any    // variable name -> candidate values

	// TemplateVars caches, per language and template index, the
	// placeholder names appearing in that template. Populated during
	// validation so selection never re-parses template strings.
	TemplateVars map[string][][]string
}

// HasLanguage reports whether the domain declares the given language code.
func (c *Config) HasLanguage(lang string) bool {
	for _, l := range c.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// TemplateCount returns the total number of template strings across all
// categories and languages.
func (c *Config) TemplateCount() int {
	total := 0
	for _, cat := range c.Categories {
		for _, ts := range cat.Templates {
			total += len(ts)
		}
	}
	return total
}

// Category returns the named category, or nil.
func (c *Config) Category(name string) *Category {
	for i := range c.Categories {
		if c.Categories[i].Name == name {
			return &c.Categories[i]
		}
	}
	return nil
}

// --- raw YAML shapes ---

type rawConfig struct {
	Domain     string            `yaml:"domain"`
	Languages  []string          `yaml:"languages"`
	Categories orderedCategories `yaml:"categories"`
}

type rawCategory struct {
	Weight    float64             `yaml:"weight"`
	Templates map[string][]string `yaml:"templates"`
	FakerVars map[string][]any    `yaml:"faker_vars"`
}

type namedCategory struct {
	name string
	cat  rawCategory
}

// orderedCategories decodes the categories mapping while preserving the
// order of keys in the YAML document. A plain map would randomize the
// category order and with it the weighted-sampling sequence.
type orderedCategories []namedCategory

func (oc *orderedCategories) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("categories must be a mapping, got %s", nodeKind(node))
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("category name: %w", err)
		}
		var rc rawCategory
		if err := node.Content[i+1].Decode(&rc); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		*oc = append(*oc, namedCategory{name: name, cat: rc})
	}
	return nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "document"
	}
}
