// Package schemas validates profile JSON files against the embedded schema
// before the engine ever sees them.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var profileSchema string

// ValidationError lists the schema violations found in a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("profile validation failed:\n")
	for _, fe := range ve.Errors {
		fmt.Fprintf(&sb, "  %s: %s\n", fe.Field, fe.Message)
	}
	return sb.String()
}

// ValidateProfile checks raw profile JSON against the embedded schema.
// Returns nil when the document conforms.
func ValidateProfile(document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(profileSchema)
	docLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
