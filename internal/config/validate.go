package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	errs "github.com/AndreyAkinshin/msyskit/internal/errors"
	"github.com/AndreyAkinshin/msyskit/internal/schema"
)

// ValidateFile checks a settings file against the settings schema and the
// delegation rules. It returns warnings for unknown or ineffective keys.
func ValidateFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	doc, err := DecodeDocument(path, data)
	if err != nil {
		return nil, &errs.MsyskitError{
			Kind:    errs.KindValidation,
			Key:     path,
			Message: "cannot parse settings file",
			Cause:   err,
		}
	}

	if err := schema.ValidateSettings(doc); err != nil {
		return nil, &errs.MsyskitError{
			Kind:    errs.KindValidation,
			Key:     path,
			Message: err.Error(),
			Cause:   err,
		}
	}

	warnings := detectUnknownKeys(doc)

	v := viper.New()
	applyDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return warnings, fmt.Errorf("failed to load settings file: %w", err)
	}

	_, storeWarnings, err := FromStore(v)
	warnings = append(warnings, storeWarnings...)
	if err != nil {
		return warnings, err
	}

	return warnings, nil
}

// DecodeDocument decodes settings data into a generic document, choosing
// the format from the file extension.
func DecodeDocument(path string, data []byte) (map[string]any, error) {
	doc := make(map[string]any)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported settings format %q (use .json, .yaml or .toml)", ext)
	}

	return doc, nil
}
