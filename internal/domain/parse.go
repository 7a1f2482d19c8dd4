package domain

import (
	"math"

	"gopkg.in/yaml.v3"
)

// Parse parses and fully validates a raw domain configuration. The
// returned Config is immutable; on any failure no partial config is
// returned.
//
// The validation order is: structural (YAML decode + JSON schema), domain
// name, then per-category semantics and the weight-sum invariant. The
// first failure is reported with a specific reason.
func Parse(name string, data []byte) (*Config, error) {
	if !nameRE.MatchString(name) {
		return nil, invalidf(name, "domain name must match ^[a-z_]+$")
	}

	if err := checkStructure(name, data); err != nil {
		return nil, err
	}

	var rc rawConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return nil, invalidf(name, "YAML syntax error: %v", err)
	}

	if rc.Domain != name {
		return nil, invalidf(name, "domain field %q does not match requested name %q", rc.Domain, name)
	}
	for _, lang := range rc.Languages {
		if !languageRE.MatchString(lang) {
			return nil, invalidf(name, "language code %q is not a 2-letter identifier", lang)
		}
	}

	cfg := &Config{
		Name:       rc.Domain,
		Languages:  append([]string(nil), rc.Languages...),
		Categories: make([]Category, 0, len(rc.Categories)),
	}

	weightSum := 0.0
	for _, nc := range rc.Categories {
		cat, err := buildCategory(name, nc.name, nc.cat, cfg.Languages)
		if err != nil {
			return nil, err
		}
		weightSum += cat.Weight
		cfg.Categories = append(cfg.Categories, *cat)
	}

	if math.Abs(weightSum-1.0) > WeightTolerance {
		return nil, invalidf(name, "category weights must sum to 1.0 (±%.2f), got %.3f", WeightTolerance, weightSum)
	}

	return cfg, nil
}

// buildCategory validates a single category and precomputes the
// placeholder sets for each of its templates.
func buildCategory(domainName, catName string, rc rawCategory, languages []string) (*Category, error) {
	if rc.Weight <= 0 || rc.Weight > 1 {
		return nil, invalidf(domainName, "category %q: weight must be in (0.0, 1.0], got %v", catName, rc.Weight)
	}

	cat := &Category{
		Name:         catName,
		Weight:       rc.Weight,
		Templates:    rc.Templates,
		FakerVars:    rc.FakerVars,
		TemplateVars: make(map[string][][]string, len(languages)),
	}

	for varName, values := range rc.FakerVars {
		if len(values) == 0 {
			return nil, invalidf(domainName, "category %q: faker variable %q has no candidate values", catName, varName)
		}
	}

	for _, lang := range languages {
		templates, ok := rc.Templates[lang]
		if !ok {
			return nil, invalidf(domainName, "category %q: missing templates for language %q", catName, lang)
		}
		if len(templates) == 0 {
			return nil, invalidf(domainName, "category %q: template list for language %q is empty", catName, lang)
		}

		vars := make([][]string, len(templates))
		for i, tmpl := range templates {
			names := ExtractPlaceholders(tmpl)
			for _, varName := range names {
				if _, ok := rc.FakerVars[varName]; !ok {
					return nil, invalidf(domainName,
						"category %q: template variable %q has no faker_vars entry", catName, varName)
				}
			}
			vars[i] = names
		}
		cat.TemplateVars[lang] = vars
	}

	return cat, nil
}
