package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *Schema {
	return NewSchema(
		Field{Name: "name", Rules: []Rule{MinLen(2, "name too short")}},
		Field{Name: "nickname", Optional: true, Rules: []Rule{MinLen(2, "nickname too short")}},
		Field{Name: "email", Rules: []Rule{Email("bad email")}},
	)
}

func TestSchemaValidate(t *testing.T) {
	s := testSchema()

	t.Run("all valid", func(t *testing.T) {
		errs := s.Validate(Values{"name": "Ada", "email": "ada@example.com"})
		assert.Nil(t, errs)
	})

	t.Run("missing required fields", func(t *testing.T) {
		errs := s.Validate(Values{})
		require.NotNil(t, errs)
		assert.Equal(t, "Name is required", errs["name"])
		assert.Equal(t, "Email is required", errs["email"])
		// Optional fields are not reported when absent.
		assert.NotContains(t, errs, "nickname")
	})

	t.Run("optional field validated when present", func(t *testing.T) {
		errs := s.Validate(Values{"name": "Ada", "email": "ada@example.com", "nickname": "a"})
		require.NotNil(t, errs)
		assert.Equal(t, "nickname too short", errs["nickname"])
	})

	t.Run("first failing rule wins", func(t *testing.T) {
		s := NewSchema(Field{Name: "f", Rules: []Rule{
			MinLen(3, "first"),
			MaxLen(1, "second"),
		}})
		errs := s.Validate(Values{"f": "ab"})
		require.NotNil(t, errs)
		assert.Equal(t, "first", errs["f"])
	})
}

func TestSchemaValidateFields(t *testing.T) {
	s := testSchema()

	t.Run("only named fields are checked", func(t *testing.T) {
		// email is invalid but not part of the subset
		errs := s.ValidateFields(Values{"name": "Ada", "email": "nope"}, "name")
		assert.Nil(t, errs)
	})

	t.Run("subset reports its own failures", func(t *testing.T) {
		errs := s.ValidateFields(Values{"name": "A"}, "name")
		require.NotNil(t, errs)
		assert.Equal(t, "name too short", errs["name"])
		assert.Len(t, errs, 1)
	})

	t.Run("unknown names are ignored", func(t *testing.T) {
		errs := s.ValidateFields(Values{"name": "Ada"}, "name", "no_such_field")
		assert.Nil(t, errs)
	})
}

func TestFieldErrorsError(t *testing.T) {
	errs := FieldErrors{"b": "second", "a": "first"}
	// Deterministic field order in the message.
	assert.Equal(t, "a: first; b: second", errs.Error())

	assert.Equal(t, "validation failed", FieldErrors{}.Error())
}

func TestNewSchemaDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewSchema(Field{Name: "x"}, Field{Name: "x"})
	})
}

func TestFieldNames(t *testing.T) {
	s := testSchema()
	assert.Equal(t, []string{"name", "nickname", "email"}, s.FieldNames())
}
