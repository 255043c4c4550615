package validation

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Embedded schema names
const (
	SchemaContent       = "content.schema.json"
	SchemaFishingConfig = "fishing.schema.json"
)

// Record definitions inside the content schema, for per-record validation
const (
	DefFish     = SchemaContent + "#/$defs/fish"
	DefTrash    = SchemaContent + "#/$defs/trash"
	DefTreasure = SchemaContent + "#/$defs/treasure"
	DefTraits   = SchemaContent + "#/$defs/traits"
	DefEffect   = SchemaContent + "#/$defs/effect"
	DefLocation = SchemaContent + "#/$defs/location"
)

//go:embed schemas/*.json
var embedded embed.FS

// SchemaValidator validates JSON data against JSON schemas.
// A schema reference is a schema file name, optionally followed by a JSON pointer fragment.
type SchemaValidator interface {
	ValidateFile(dataPath, schemaRef string) error
	ValidateBytes(data []byte, schemaRef string) error
	ValidateValue(value interface{}, schemaRef string) error
}

type validator struct {
	fsys     fs.FS
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	loaded   map[string]bool
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator over the schemas embedded in this package
func NewSchemaValidator() SchemaValidator {
	sub, _ := fs.Sub(embedded, "schemas")
	return NewSchemaValidatorFS(sub)
}

// NewSchemaValidatorFS creates a validator that reads schema files from fsys
func NewSchemaValidatorFS(fsys fs.FS) SchemaValidator {
	return &validator{
		fsys:     fsys,
		compiler: jsonschema.NewCompiler(),
		loaded:   make(map[string]bool),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON file on disk
func (v *validator) ValidateFile(dataPath, schemaRef string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data, schemaRef)
}

// ValidateBytes validates raw JSON
func (v *validator) ValidateBytes(data []byte, schemaRef string) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	return v.ValidateValue(doc, schemaRef)
}

// ValidateValue validates an already decoded JSON value (maps, slices, float64, ...)
func (v *validator) ValidateValue(value interface{}, schemaRef string) error {
	schema, err := v.loadSchema(schemaRef)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaRef, err)
	}
	if err := schema.Validate(value); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// loadSchema compiles a schema reference, caching the result
func (v *validator) loadSchema(schemaRef string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[schemaRef]; ok {
		return schema, nil
	}

	file, _, _ := strings.Cut(schemaRef, "#")
	if !v.loaded[file] {
		data, err := fs.ReadFile(v.fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file: %w", err)
		}
		var doc interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
		}
		if err := v.compiler.AddResource(file, doc); err != nil {
			return nil, fmt.Errorf("failed to add schema resource: %w", err)
		}
		v.loaded[file] = true
	}

	schema, err := v.compiler.Compile(schemaRef)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	v.schemas[schemaRef] = schema
	return schema, nil
}

// formatValidationError flattens a validation error tree into one line per failure
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if keywords := err.ErrorKind.KeywordPath(); len(keywords) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(keywords, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
