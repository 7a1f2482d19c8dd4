package domain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBankingYAML = `domain: banking
languages: [pl, en]
categories:
  system_error:
    weight: 0.4
    templates:
      pl: ["Błąd {error_code} w systemie {system_name}."]
      en: ["Error {error_code} in {system_name}.", "{system_name} is down with {error_code}."]
    faker_vars:
      error_code: [500, "AUTH_FAILED"]
      system_name: ["Internet Banking", "Mobile App"]
  account_access:
    weight: 0.6
    templates:
      pl: ["Brak dostępu do konta {account}."]
      en: ["Cannot access account {account}."]
    faker_vars:
      account: ["123456", "789012"]
`

func writeDomain(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0644))
}

func newTestManager(t *testing.T, files map[string]string) *Manager {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		writeDomain(t, dir, name, content)
	}
	return NewManager(NewDirStore(dir))
}

func TestParse_Valid(t *testing.T) {
	cfg, err := Parse("banking", []byte(validBankingYAML))
	require.NoError(t, err)

	assert.Equal(t, "banking", cfg.Name)
	assert.Equal(t, []string{"pl", "en"}, cfg.Languages)

	// Category order must follow the YAML document, not map iteration.
	require.Len(t, cfg.Categories, 2)
	assert.Equal(t, "system_error", cfg.Categories[0].Name)
	assert.Equal(t, "account_access", cfg.Categories[1].Name)
	assert.InDelta(t, 0.4, cfg.Categories[0].Weight, 1e-9)

	// Placeholder sets are precomputed per language and template index.
	vars := cfg.Categories[0].TemplateVars["en"]
	require.Len(t, vars, 2)
	assert.Equal(t, []string{"error_code", "system_name"}, vars[0])
	assert.Equal(t, []string{"system_name", "error_code"}, vars[1])

	assert.Equal(t, 5, cfg.TemplateCount())
	assert.True(t, cfg.HasLanguage("pl"))
	assert.False(t, cfg.HasLanguage("de"))
}

func TestParse_WeightSumOutOfTolerance(t *testing.T) {
	data := `domain: shop
languages: [en]
categories:
  a:
    weight: 0.3
    templates:
      en: ["one"]
  b:
    weight: 0.5
    templates:
      en: ["two"]
`
	_, err := Parse("shop", []byte(data))
	var ice *InvalidConfigError
	require.ErrorAs(t, err, &ice)
	assert.Contains(t, ice.Reason, "sum")
	assert.Contains(t, ice.Reason, "0.800")
}

func TestParse_UnboundVariable(t *testing.T) {
	data := `domain: shop
languages: [en]
categories:
  greet:
    weight: 1.0
    templates:
      en: ["Hello {name}"]
    faker_vars:
      age: [30, 40]
`
	_, err := Parse("shop", []byte(data))
	var ice *InvalidConfigError
	require.ErrorAs(t, err, &ice)
	assert.Contains(t, ice.Reason, `"name"`)
}

func TestParse_MissingLanguageTemplates(t *testing.T) {
	data := `domain: shop
languages: [pl, en]
categories:
  greet:
    weight: 1.0
    templates:
      pl: ["Cześć"]
`
	_, err := Parse("shop", []byte(data))
	var ice *InvalidConfigError
	require.ErrorAs(t, err, &ice)
	assert.Contains(t, ice.Reason, "missing templates")
	assert.Contains(t, ice.Reason, `"en"`)
}

func TestParse_EmptyTemplateList(t *testing.T) {
	data := `domain: shop
languages: [en]
categories:
  greet:
    weight: 1.0
    templates:
      en: []
`
	_, err := Parse("shop", []byte(data))
	var ice *InvalidConfigError
	require.ErrorAs(t, err, &ice)
	assert.Contains(t, ice.Reason, "empty")
}

func TestParse_EmptyFakerValues(t *testing.T) {
	data := `domain: shop
languages: [en]
categories:
  greet:
    weight: 1.0
    templates:
      en: ["Hello {name}"]
    faker_vars:
      name: []
`
	_, err := Parse("shop", []byte(data))
	var ice *InvalidConfigError
	require.ErrorAs(t, err, &ice)
	assert.Contains(t, ice.Reason, "no candidate values")
}

func TestParse_WeightOutOfRange(t *testing.T) {
	for _, weight := range []string{"0", "-0.2", "1.5"} {
		data := `domain: shop
languages: [en]
categories:
  a:
    weight: ` + weight + `
    templates:
      en: ["one"]
`
		_, err := Parse("shop", []byte(data))
		var ice *InvalidConfigError
		require.ErrorAs(t, err, &ice, "weight %s should be rejected", weight)
	}
}

func TestParse_DomainNameMismatch(t *testing.T) {
	data := `domain: other
languages: [en]
categories:
  a:
    weight: 1.0
    templates:
      en: ["one"]
`
	_, err := Parse("shop", []byte(data))
	var ice *InvalidConfigError
	require.ErrorAs(t, err, &ice)
	assert.Contains(t, ice.Reason, "does not match")
}

func TestParse_InvalidDomainName(t *testing.T) {
	_, err := Parse("Bad-Name", []byte(validBankingYAML))
	var ice *InvalidConfigError
	require.ErrorAs(t, err, &ice)
	assert.Contains(t, ice.Reason, "^[a-z_]+$")
}

func TestParse_InvalidLanguageCode(t *testing.T) {
	data := `domain: shop
languages: [english]
categories:
  a:
    weight: 1.0
    templates:
      english: ["one"]
`
	_, err := Parse("shop", []byte(data))
	var ice *InvalidConfigError
	require.ErrorAs(t, err, &ice)
}

func TestParse_MissingRequiredKeys(t *testing.T) {
	data := `domain: shop
categories:
  a:
    weight: 1.0
    templates:
      en: ["one"]
`
	_, err := Parse("shop", []byte(data))
	var ice *InvalidConfigError
	require.ErrorAs(t, err, &ice)
	assert.Contains(t, ice.Reason, "languages")
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse("shop", []byte("categories: [\n  broken"))
	var ice *InvalidConfigError
	require.ErrorAs(t, err, &ice)
	assert.Contains(t, ice.Reason, "YAML")
}

func TestParse_EmptyFile(t *testing.T) {
	_, err := Parse("shop", []byte(""))
	var ice *InvalidConfigError
	require.ErrorAs(t, err, &ice)
	assert.Contains(t, ice.Reason, "empty")
}

func TestManagerLoad_CachesValidatedConfig(t *testing.T) {
	m := newTestManager(t, map[string]string{"banking": validBankingYAML})

	first, err := m.Load("banking")
	require.NoError(t, err)
	second, err := m.Load("banking")
	require.NoError(t, err)
	assert.Same(t, first, second)

	m.Invalidate("banking")
	third, err := m.Load("banking")
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestManagerLoad_NotFound(t *testing.T) {
	m := newTestManager(t, map[string]string{"banking": validBankingYAML})

	_, err := m.Load("medical")
	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "medical", nfe.Name)
	assert.Contains(t, nfe.Available, "banking")
	assert.Contains(t, err.Error(), "banking")
}

func TestManagerCheck_DoesNotCache(t *testing.T) {
	dir := t.TempDir()
	writeDomain(t, dir, "banking", validBankingYAML)
	m := NewManager(NewDirStore(dir))

	_, err := m.Check("banking")
	require.NoError(t, err)

	// Break the file; a cached Check result would mask this.
	writeDomain(t, dir, "banking", "domain: banking\n")
	_, err = m.Load("banking")
	require.Error(t, err)
}

func TestDirStore_List(t *testing.T) {
	dir := t.TempDir()
	writeDomain(t, dir, "banking", validBankingYAML)
	writeDomain(t, dir, "medical", validBankingYAML)
	writeDomain(t, dir, ".hidden", "x")
	writeDomain(t, dir, "template", "x")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	names, err := NewDirStore(dir).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"banking", "medical"}, names)
}

func TestDirStore_MissingDirectory(t *testing.T) {
	store := NewDirStore(filepath.Join(t.TempDir(), "nope"))

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = store.FetchRaw("banking")
	var nfe *NotFoundError
	assert.True(t, errors.As(err, &nfe))
}
