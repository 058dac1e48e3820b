package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AndreyAkinshin/msyskit/internal/provider"
)

// KnownKeys returns every flat settings key msyskit reads.
func KnownKeys() []string {
	keys := []string{KeyGenerator, KeyKit, KeyLegacy}
	for _, id := range provider.All() {
		keys = append(keys, RootKey(id), DelegateKey(id))
	}
	return keys
}

// detectUnknownKeys walks a decoded settings document and reports keys
// msyskit does not read. Both nested ({"msys2": {"root": ...}}) and flat
// ({"msys2.root": ...}) spellings are accepted.
func detectUnknownKeys(doc map[string]any) []string {
	known := make(map[string]bool)
	for _, key := range KnownKeys() {
		known[key] = true
	}

	var warnings []string
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for key, value := range m {
			if prefix == "" && key == "$schema" {
				continue // $schema is explicitly allowed and ignored
			}
			full := strings.ToLower(key)
			if prefix != "" {
				full = prefix + "." + full
			}
			if known[full] {
				continue
			}
			if nested, ok := value.(map[string]any); ok && isKnownPrefix(full, known) {
				walk(full, nested)
				continue
			}
			warnings = append(warnings, fmt.Sprintf("unknown setting %q (ignored)", full))
		}
	}
	walk("", doc)

	sort.Strings(warnings)
	return warnings
}

func isKnownPrefix(prefix string, known map[string]bool) bool {
	for key := range known {
		if strings.HasPrefix(key, prefix+".") {
			return true
		}
	}
	return false
}
