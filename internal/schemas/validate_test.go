package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGenerateEmailRequest_Valid(t *testing.T) {
	body := `{
		"job_parser": {"Extracted": {"company_name": "Acme"}, "rawData": null},
		"candidate_matching": {"full_name": "Jane", "matching_result": {"comparison_comment": "Great"}}
	}`

	assert.NoError(t, ValidateGenerateEmailRequest([]byte(body)))
}

func TestValidateGenerateEmailRequest_EmptyRecords(t *testing.T) {
	body := `{"job_parser": {}, "candidate_matching": {}}`

	assert.NoError(t, ValidateGenerateEmailRequest([]byte(body)))
}

func TestValidateGenerateEmailRequest_PresenceNotChecked(t *testing.T) {
	assert.NoError(t, ValidateGenerateEmailRequest([]byte(`{"job_parser": {}}`)))
	assert.NoError(t, ValidateGenerateEmailRequest([]byte(`{}`)))
}

func TestValidateGenerateEmailRequest_NestedSectionsNotChecked(t *testing.T) {
	body := `{"job_parser": {"Extracted": "oops", "rawData": [1]}, "candidate_matching": {"matching_result": 5}}`

	assert.NoError(t, ValidateGenerateEmailRequest([]byte(body)))
}

func TestValidateGenerateEmailRequest_WrongType(t *testing.T) {
	body := `{"job_parser": "not an object", "candidate_matching": null}`

	err := ValidateGenerateEmailRequest([]byte(body))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))

	fields := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "job_parser")
	assert.Contains(t, fields, "candidate_matching")
}

func TestValidateGenerateEmailRequest_NotAnObject(t *testing.T) {
	err := ValidateGenerateEmailRequest([]byte(`[]`))

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateGenerateEmailRequest_NotJSON(t *testing.T) {
	err := ValidateGenerateEmailRequest([]byte(`{not json`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestValidateRecord(t *testing.T) {
	assert.NoError(t, ValidateRecord([]byte(`{"Extracted": {}}`)))
	assert.Error(t, ValidateRecord([]byte(`[1, 2]`)))
	assert.Error(t, ValidateRecord([]byte(`"text"`)))
}

func TestValidateEmbedded_UnknownSchema(t *testing.T) {
	err := ValidateEmbedded("missing.schema.json", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "missing.schema.json", loadErr.Path)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "job_parser", Message: "Invalid type"},
		{Field: "(root)", Message: "candidate_matching is required"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "1. job_parser: Invalid type")
	assert.Contains(t, msg, "2. (root): candidate_matching is required")
}
