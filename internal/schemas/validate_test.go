package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "type": "object",
  "required": ["score"],
  "properties": {
    "score": { "type": "number", "minimum": 0, "maximum": 100 }
  }
}`

func TestValidateJSONString_Valid(t *testing.T) {
	assert.NoError(t, ValidateJSONString(testSchema, `{"score": 85}`))
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{}`)

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJSONString_OutOfRange(t *testing.T) {
	assert.Error(t, ValidateJSONString(testSchema, `{"score": 150}`))
}

func TestValidateJSONString_MalformedJSON(t *testing.T) {
	assert.Error(t, ValidateJSONString(testSchema, `{"score": `))
}
