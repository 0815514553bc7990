package certification

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajorVersion is the catalog file format major version this
// build understands.
const SupportedMajorVersion = "v1"

// catalogFile is the on-disk layout of a custom catalog.
type catalogFile struct {
	Version        string          `json:"version"`
	Certifications []Certification `json:"certifications"`
}

// LoadFile reads a catalog from a JSON or YAML file.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(raw)
	default:
		return ParseJSON(raw)
	}
}

// ParseYAML parses a YAML catalog document.
func ParseYAML(raw []byte) (*Catalog, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}
	// Round-trip through JSON so the schema validator and the typed decoder
	// see the same document.
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert catalog YAML: %w", err)
	}
	return ParseJSON(b)
}

// ParseJSON parses a JSON catalog document, validating it against the
// catalog schema, the format version and the structural rules.
func ParseJSON(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog JSON: %w", err)
	}

	schema, err := compiledCatalogSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var doc catalogFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	return New(doc.Certifications)
}

// checkVersion accepts semantic versions within SupportedMajorVersion.
func checkVersion(v string) error {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("catalog version %q is not a semantic version", v)
	}
	if major := semver.Major(v); major != SupportedMajorVersion {
		return fmt.Errorf("catalog version %s is not supported (want %s.x.y)", v, SupportedMajorVersion)
	}
	return nil
}

var compiledCatalogSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal([]byte(catalogSchema), &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://certplan/catalog.json"
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// catalogSchema describes the custom catalog file format.
const catalogSchema = `{
  "type": "object",
  "required": ["version", "certifications"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "certifications": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "name", "provider", "level", "difficulty", "examTopics"],
        "properties": {
          "id": {"type": "string", "pattern": "^[a-z0-9][a-z0-9-]*$"},
          "name": {"type": "string", "minLength": 1},
          "provider": {"enum": ["aws", "azure", "gcp", "vendor-neutral"]},
          "level": {"enum": ["foundational", "associate", "professional", "specialty"]},
          "difficulty": {"type": "integer", "minimum": 1, "maximum": 5},
          "examTopics": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["name", "weight"],
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "weight": {"type": "number", "minimum": 0, "maximum": 100},
                "subtopics": {"type": "array", "items": {"type": "string"}}
              }
            }
          },
          "prerequisites": {"type": "array", "items": {"type": "string"}},
          "roles": {"type": "array", "items": {"type": "string"}},
          "examCostUsd": {"type": "integer", "minimum": 0},
          "examMinutes": {"type": "integer", "minimum": 0},
          "validityYears": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`
