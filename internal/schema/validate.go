// Package schema provides JSON schema validation for msyskit settings files.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/AndreyAkinshin/msyskit/schema"
)

const settingsSchemaName = "settings.schema.json"

var (
	settingsSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// compileSchemas compiles the embedded schema once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		data, err := schemafs.FS.ReadFile(settingsSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("read settings schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal settings schema: %w", err)
			return
		}

		if err := compiler.AddResource(settingsSchemaName, doc); err != nil {
			compileErr = fmt.Errorf("add settings schema resource: %w", err)
			return
		}

		settingsSchema, err = compiler.Compile(settingsSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile settings schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateSettings validates a decoded settings document (from JSON, YAML
// or TOML) against the settings schema.
func ValidateSettings(doc any) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	// YAML and TOML decoders produce Go types the validator does not
	// accept (int, int64, time.Time); re-read the document as JSON.
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}

	if err := settingsSchema.Validate(inst); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}

	return nil
}
