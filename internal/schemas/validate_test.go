package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tableSchema = []byte(`{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["categories"],
	"additionalProperties": false,
	"properties": {
		"categories": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["name", "core"],
				"additionalProperties": false,
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"core": {"type": "array", "items": {"type": "string"}},
					"related": {"type": "array", "items": {"type": "string"}}
				}
			}
		}
	}
}`)

func TestValidateBytes_ValidDocument(t *testing.T) {
	doc := []byte(`{
		"categories": [
			{"name": "Data Science", "core": ["python", "pandas"], "related": ["sql"]}
		]
	}`)

	err := ValidateBytes("keyword tables", tableSchema, doc)
	assert.NoError(t, err)
}

func TestValidateBytes_MissingRequiredField(t *testing.T) {
	doc := []byte(`{
		"categories": [
			{"name": "Data Science"}
		]
	}`)

	err := ValidateBytes("keyword tables", tableSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "core")
}

func TestValidateBytes_AdditionalPropertyRejected(t *testing.T) {
	doc := []byte(`{
		"categories": [
			{"name": "Data Science", "core": [], "weight": 5}
		]
	}`)

	err := ValidateBytes("keyword tables", tableSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateBytes_EmptyCategoriesRejected(t *testing.T) {
	doc := []byte(`{"categories": []}`)

	err := ValidateBytes("keyword tables", tableSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "categories", validationErr.Errors[0].Field)
}

func TestValidateBytes_WrongType(t *testing.T) {
	doc := []byte(`{"categories": "not an array"}`)

	err := ValidateBytes("keyword tables", tableSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "categories")
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	err := ValidateBytes("keyword tables", tableSchema, []byte(`{not json`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "keyword tables", loadErr.Name)
}

func TestValidateBytes_MalformedSchema(t *testing.T) {
	err := ValidateBytes("broken", []byte(`{"type": []]`), []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestSchemaLoadError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &SchemaLoadError{Name: "courses", Message: "load failed", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "courses")
	assert.Contains(t, err.Error(), "boom")
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "categories.0.name", Message: "String length must be greater than or equal to 1"},
		{Field: "(root)", Message: "categories is required"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "1. categories.0.name")
	assert.Contains(t, msg, "2. (root)")
}
