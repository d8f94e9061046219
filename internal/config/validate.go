package config

import (
	"bytes"
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaSource string

// ValidationError is a config file rejection, positioned when the schema
// checker can attribute it to a line.
type ValidationError struct {
	Message string
	Pos     token.Pos
}

func (e *ValidationError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// ValidateYAML checks raw config bytes against the embedded schema. It runs
// before decoding so malformed documents are rejected with positions instead
// of surfacing later as half-populated structs.
func ValidateYAML(filename string, data []byte) error {
	// An empty document carries no fields to check; defaults cover it.
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("looking up config schema definition: %w", err)
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return toValidationError(err)
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return toValidationError(err)
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Final()); err != nil {
		return toValidationError(err)
	}
	return nil
}

func toValidationError(err error) *ValidationError {
	ve := &ValidationError{Message: err.Error()}
	if positions := cueerrors.Positions(err); len(positions) > 0 {
		ve.Pos = positions[0]
	}
	return ve
}
