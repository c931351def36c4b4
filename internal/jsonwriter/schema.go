package jsonwriter

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/payload.schema.json
var payloadSchema []byte

const payloadSchemaURL = "https://wecode.dev/schemas/certificate-payload.json"

// ErrInvalidPayload is wrapped by Verify when a document does not match the
// payload schema.
var ErrInvalidPayload = errors.New("payload does not match schema")

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// PayloadSchema returns the embedded JSON schema of the payload document.
func PayloadSchema() []byte {
	return payloadSchema
}

func getSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(payloadSchema))
		if err != nil {
			schemaErr = fmt.Errorf("failed to parse payload schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(payloadSchemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("failed to add payload schema: %w", err)
			return
		}

		compiledSchema, schemaErr = compiler.Compile(payloadSchemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile payload schema: %w", schemaErr)
		}
	})

	return compiledSchema, schemaErr
}

// Verify checks a serialized payload against the payload schema: an array of
// objects carrying exactly the seven string fields of a record.
func Verify(data []byte) error {
	_, err := verify(data)
	return err
}

// VerifyFile checks the payload file at path and returns its record count.
//
// RETURNS:
//   - The number of records in the file.
//   - An error wrapping fs.ErrNotExist for a missing file, or
//     ErrInvalidPayload when the content does not match the schema.
func VerifyFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read payload file: %w", err)
	}

	doc, err := verify(data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	records, _ := doc.([]any)
	return len(records), nil
}

func verify(data []byte) (any, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return nil, fmt.Errorf("%w at %s: %v", ErrInvalidPayload, location(verr), err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return doc, nil
}

// location returns the JSON pointer of the first leaf cause.
func location(err *jsonschema.ValidationError) string {
	for len(err.Causes) > 0 {
		err = err.Causes[0]
	}
	return "/" + strings.Join(err.InstanceLocation, "/")
}
