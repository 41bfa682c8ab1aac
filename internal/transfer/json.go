// Package transfer moves the progress store in and out of files: JSON for
// backup and restore, XLSX and CSV for reading progress elsewhere.
package transfer

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/codetrack/codetrack/internal/progress"
)

// ErrInvalidShape is returned when an import document does not match the
// progress store shape.
var ErrInvalidShape = errors.New("invalid progress document")

//go:embed progress.schema.json
var schemaJSON []byte

const schemaURL = "codetrack://progress.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func progressSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// ExportJSON writes the store in its storage format, indented.
func ExportJSON(w io.Writer, s progress.Store) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// ImportJSON reads a store previously written by ExportJSON. The document is
// checked against the progress schema; list names are not checked against the
// catalog and are kept as they are.
func ImportJSON(r io.Reader) (progress.Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return progress.Store{}, fmt.Errorf("read import: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return progress.Store{}, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	sch, err := progressSchema()
	if err != nil {
		return progress.Store{}, fmt.Errorf("compile progress schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return progress.Store{}, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}

	s, _, err := progress.DecodeStore(data)
	if err != nil {
		return progress.Store{}, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	return s, nil
}
