// Package validation provides a declarative, field-oriented schema engine.
// A Schema maps field names to ordered rule lists and can validate either a
// whole value set or an arbitrary subset of fields, which is what step-scoped
// form checks need. Validation results are plain field -> message maps so
// callers can surface them inline without inspecting error chains.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Values holds raw form input keyed by field name. All values are the string
// form the user typed; numeric coercion happens at submission time, not here.
type Values map[string]string

// FieldErrors maps a field name to a human-readable error message.
type FieldErrors map[string]string

// Error implements the error interface so a FieldErrors value can travel
// through error returns. Messages are joined deterministically.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e[name]))
	}
	return strings.Join(parts, "; ")
}

// Rule checks a single field value. It receives the full value set so
// cross-field rules (password confirmation) can reach their counterpart.
// An empty return means the value passed.
type Rule func(value string, all Values) string

// Field couples a field name with its ordered rule list. Rules run in order
// and the first failure wins, mirroring how the field is reported inline.
type Field struct {
	Name     string
	Optional bool
	Rules    []Rule
}

// Schema is an immutable set of field definitions.
type Schema struct {
	fields []Field
	byName map[string]Field
}

// NewSchema builds a schema from field definitions. Duplicate names panic;
// schemas are package-level constants in practice, so this fails fast at init.
func NewSchema(fields ...Field) *Schema {
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		if _, dup := byName[f.Name]; dup {
			panic(fmt.Sprintf("validation: duplicate field %q in schema", f.Name))
		}
		byName[f.Name] = f
	}
	return &Schema{fields: fields, byName: byName}
}

// Validate checks every field in the schema against the given values.
func (s *Schema) Validate(values Values) FieldErrors {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.Name)
	}
	return s.ValidateFields(values, names...)
}

// ValidateFields checks only the named subset of fields. Unknown names are
// ignored so step definitions can evolve independently of the schema.
func (s *Schema) ValidateFields(values Values, names ...string) FieldErrors {
	errs := FieldErrors{}
	for _, name := range names {
		field, ok := s.byName[name]
		if !ok {
			continue
		}
		value := values[name]
		if value == "" {
			if !field.Optional {
				errs[name] = requiredMessage(name)
			}
			continue
		}
		for _, rule := range field.Rules {
			if msg := rule(value, values); msg != "" {
				errs[name] = msg
				break
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// FieldNames returns the schema's field names in definition order.
func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.Name)
	}
	return names
}

func requiredMessage(name string) string {
	label := strings.ReplaceAll(name, "_", " ")
	if label == "" {
		return "This field is required"
	}
	return strings.ToUpper(label[:1]) + label[1:] + " is required"
}
