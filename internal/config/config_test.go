package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "domains", cfg.Domains.Dir)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.Equal(t, "pdfgen.db", cfg.Output.Manifest)
	assert.Equal(t, "pdf-generator", cfg.PDF.Author)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `domains:
  dir: /etc/pdfgen/domains
output:
  dir: /var/pdfgen/out
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/etc/pdfgen/domains", cfg.Domains.Dir)
	assert.Equal(t, "/var/pdfgen/out", cfg.Output.Dir)
	// Untouched keys keep their defaults.
	assert.Equal(t, "pdfgen.db", cfg.Output.Manifest)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PDFGEN_DOMAINS_DIR", "/env/domains")
	t.Setenv("PDFGEN_MANIFEST", "/env/manifest.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/env/domains", cfg.Domains.Dir)
	assert.Equal(t, "/env/manifest.db", cfg.Output.Manifest)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("domains: [broken"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
