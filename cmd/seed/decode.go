package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaURL = "mem://seeds/schema.json"

// toJSON normalizes seed content to JSON. Files named *.yaml or *.yml are
// parsed as YAML; everything else is assumed to be JSON already.
func toJSON(name string, content []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		return out, nil
	default:
		return content, nil
	}
}

// validateSeed checks JSON seed content against the embedded schema.
func validateSeed(content []byte) error {
	raw, err := seedFiles.ReadFile("seeds/schema.json")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, schemaDoc); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}

	sch, err := c.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}

	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("invalid seed data: %w", err)
	}

	return nil
}
