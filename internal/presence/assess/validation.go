package assess

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jayvaglio/online-presence-app/internal/common/errors"
)

var inputSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"name"},
	"properties": map[string]interface{}{
		"name": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
	},
}

// validateInput checks the request against the schema and rejects
// whitespace-only names, which the schema's minLength cannot catch.
func validateInput(input *Input) error {
	schemaLoader := gojsonschema.NewGoLoader(inputSchema)
	documentLoader := gojsonschema.NewGoLoader(input)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.NewInternalError(err)
	}

	if !result.Valid() {
		details := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			details[i] = desc.String()
		}
		return errors.NewValidationError("name required", strings.Join(details, "; "))
	}

	if strings.TrimSpace(input.Name) == "" {
		return errors.NewValidationError("name required", "name is blank")
	}

	return nil
}
