package config

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/msyskit/internal/provider"
)

// Formats accepted by Encode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Document returns the settings as a nested document using the same keys
// a settings file would. Absent settings are omitted.
func (s *Settings) Document() map[string]any {
	doc := make(map[string]any)
	if s == nil {
		return doc
	}

	for _, id := range provider.All() {
		pc := s.Provider(id)
		entry := make(map[string]any)
		if pc.Root != "" {
			entry["root"] = pc.Root
		}
		if pc.Delegate != provider.None {
			entry["provider"] = pc.Delegate.String()
		}
		if len(entry) > 0 {
			doc[id.String()] = entry
		}
	}

	if s.Generator != "" {
		doc["cmake"] = map[string]any{"generator": s.Generator}
	}
	if s.Kit != "" {
		doc[KeyKit] = s.Kit
	}
	doc["classifier"] = map[string]any{"legacy": s.Legacy}

	return doc
}

// Encode writes doc to w as JSON, YAML or TOML.
func Encode(w io.Writer, doc map[string]any, format string) error {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("unsupported format %q (valid: json, yaml, toml)", format)
}
