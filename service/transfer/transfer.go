// Package transfer exports stored records to YAML or JSON and imports them
// back after schema validation.
package transfer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	apperr "cptui.GO/core/errors"
	"cptui.GO/hooks"
)

// Format is an export encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" and "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", apperr.NewValidationError("format", fmt.Sprintf("unknown format %q", s))
}

// FormatForPath picks the format from a file extension, defaulting to YAML.
func FormatForPath(path string) Format {
	if f, err := ParseFormat(filepath.Ext(path)); err == nil {
		return f
	}
	return FormatYAML
}

// Store is the record persistence export and import need.
type Store interface {
	FindAll(ctx context.Context, kind hooks.Kind) (hooks.Records, error)
	SaveAll(ctx context.Context, kind hooks.Kind, records hooks.Records) error
}

// Document is the exported shape: kind name to records.
type Document map[string]hooks.Records

//go:embed records.schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("records.schema.json", schemaJSON)

// Export writes every stored record of kinds (all kinds when empty).
func Export(ctx context.Context, store Store, w io.Writer, format Format, kinds ...hooks.Kind) error {
	if len(kinds) == 0 {
		kinds = hooks.Kinds()
	}
	doc := Document{}
	for _, kind := range kinds {
		records, err := store.FindAll(ctx, kind)
		if err != nil {
			return err
		}
		doc[kind.String()] = records
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return apperr.NewValidationError("format", fmt.Sprintf("unknown format %q", format))
}

// Import validates and upserts the records in r. Records already stored
// under other names are left alone. Returns the number of records written.
func Import(ctx context.Context, store Store, r io.Reader, format Format) (int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	var generic interface{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(raw, &generic); err != nil {
			return 0, apperr.NewValidationError("", "invalid JSON: "+err.Error())
		}
	case FormatYAML:
		var y interface{}
		if err := yaml.Unmarshal(raw, &y); err != nil {
			return 0, apperr.NewValidationError("", "invalid YAML: "+err.Error())
		}
		// Normalize YAML scalars to what encoding/json produces.
		b, err := json.Marshal(y)
		if err != nil {
			return 0, apperr.NewValidationError("", "unsupported YAML: "+err.Error())
		}
		if err := json.Unmarshal(b, &generic); err != nil {
			return 0, err
		}
	default:
		return 0, apperr.NewValidationError("format", fmt.Sprintf("unknown format %q", format))
	}
	if generic == nil {
		return 0, nil
	}
	if err := schema.Validate(generic); err != nil {
		return 0, apperr.NewValidationError("", err.Error())
	}

	b, err := json.Marshal(generic)
	if err != nil {
		return 0, err
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return 0, err
	}

	written := 0
	for _, kind := range hooks.Kinds() {
		records := doc[kind.String()]
		if len(records) == 0 {
			continue
		}
		for name, rec := range records {
			if rec == nil {
				rec = hooks.Record{}
				records[name] = rec
			}
			rec["name"] = name
		}
		if err := store.SaveAll(ctx, kind, records); err != nil {
			return written, fmt.Errorf("transfer: import %s: %w", kind, err)
		}
		written += len(records)
	}
	return written, nil
}
