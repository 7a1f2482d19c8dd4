package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration. Values come from config.yaml,
// overridden by environment variables (a .env file is honored if present).
type Config struct {
	Domains struct {
		Dir string `yaml:"dir"`
	} `yaml:"domains"`
	Output struct {
		Dir      string `yaml:"dir"`
		Manifest string `yaml:"manifest"`
	} `yaml:"output"`
	PDF struct {
		Author string `yaml:"author"`
	} `yaml:"pdf"`
}

// Load reads configuration from path. A missing file is not an error; the
// defaults apply.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Domains.Dir = "domains"
	cfg.Output.Dir = "output"
	cfg.Output.Manifest = "pdfgen.db"
	cfg.PDF.Author = "pdf-generator"

	// 2. Overlay YAML config when present
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with environment variables if present
	if dir := os.Getenv("PDFGEN_DOMAINS_DIR"); dir != "" {
		cfg.Domains.Dir = dir
	}
	if dir := os.Getenv("PDFGEN_OUTPUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}
	if manifest := os.Getenv("PDFGEN_MANIFEST"); manifest != "" {
		cfg.Output.Manifest = manifest
	}

	return cfg, nil
}
