package domain

import (
	_ "embed"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed domain.schema.json
var domainSchemaJSON string

// compiledSchema compiles the embedded domain schema once per process.
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("domain.schema.json", strings.NewReader(domainSchemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile("domain.schema.json")
})

// checkStructure runs the JSON-schema pass over the decoded YAML document.
// It catches missing required keys and wrong field types before the
// semantic validation runs.
func checkStructure(name string, data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return invalidf(name, "YAML syntax error: %v", err)
	}
	if doc == nil {
		return invalidf(name, "configuration file is empty")
	}

	jsonDoc, err := toJSONValue(doc)
	if err != nil {
		return invalidf(name, "configuration is not a plain data document: %v", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return invalidf(name, "loading domain schema: %v", err)
	}

	if err := schema.Validate(jsonDoc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return invalidf(name, "structural validation failed: %s", schemaErrorSummary(ve))
		}
		return invalidf(name, "structural validation failed: %v", err)
	}
	return nil
}

// toJSONValue converts a yaml.v3-decoded value into the value shapes the
// schema validator expects (the ones encoding/json produces).
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// schemaErrorSummary flattens a validation error into its most specific
// leaf message, which is far more readable than the full cause tree.
func schemaErrorSummary(ve *jsonschema.ValidationError) string {
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	if leaf.InstanceLocation != "" {
		return leaf.InstanceLocation + ": " + leaf.Message
	}
	return leaf.Message
}
