// Package schemaval compiles and caches JSON Schema validators for content
// types. Validators are compiled once per (type id, schema revision) and
// reused across requests; a schema update naturally invalidates the cached
// entry because the revision key changes.
package schemaval

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidSchema is returned when the schema source itself cannot be
// parsed or compiled.
var ErrInvalidSchema = errors.New("invalid JSON schema")

// ValidationFailure describes a payload that failed schema validation.
type ValidationFailure struct {
	// Pointer is the JSON pointer of the failing location in the payload.
	Pointer string
	// Detail is a human-readable description of the failure.
	Detail string
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("schema validation failed at %q: %s", e.Pointer, e.Detail)
}

// Cache holds compiled validators keyed by (type id, revision).
type Cache struct {
	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

// NewCache creates an empty validator cache.
func NewCache() *Cache {
	return &Cache{
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Compile parses and compiles a schema without caching. Used to validate
// schema source at content-type create/update time.
func Compile(source string) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return schema, nil
}

// Validate checks a JSON payload against the schema of a content type,
// compiling and caching the validator on first use. typeID and revision
// form the cache key; revision should change whenever the schema text does
// (the type's updated_at timestamp works).
func (c *Cache) Validate(typeID int, revision string, schemaSource, payload string) error {
	schema, err := c.get(typeID, revision, schemaSource)
	if err != nil {
		return err
	}

	instance, err := jsonschema.UnmarshalJSON(strings.NewReader(payload))
	if err != nil {
		return &ValidationFailure{Pointer: "", Detail: fmt.Sprintf("payload is not valid JSON: %v", err)}
	}

	if err := schema.Validate(instance); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			leaf := leafCause(ve)
			return &ValidationFailure{
				Pointer: pointerOf(leaf),
				Detail:  leaf.Error(),
			}
		}
		return &ValidationFailure{Pointer: "", Detail: err.Error()}
	}
	return nil
}

func (c *Cache) get(typeID int, revision, schemaSource string) (*jsonschema.Schema, error) {
	key := fmt.Sprintf("%d@%s", typeID, revision)

	c.mu.Lock()
	defer c.mu.Unlock()

	if schema, ok := c.compiled[key]; ok {
		return schema, nil
	}

	schema, err := Compile(schemaSource)
	if err != nil {
		return nil, err
	}

	// Drop stale revisions of the same type so the cache doesn't grow
	// unboundedly as schemas evolve.
	prefix := fmt.Sprintf("%d@", typeID)
	for k := range c.compiled {
		if strings.HasPrefix(k, prefix) {
			delete(c.compiled, k)
		}
	}

	c.compiled[key] = schema
	return schema, nil
}

// leafCause walks to the deepest cause of a validation error, which carries
// the most specific instance location.
func leafCause(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

func pointerOf(ve *jsonschema.ValidationError) string {
	if len(ve.InstanceLocation) == 0 {
		return ""
	}
	return "/" + strings.Join(ve.InstanceLocation, "/")
}
