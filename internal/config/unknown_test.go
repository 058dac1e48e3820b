package config

import (
	"strings"
	"testing"
)

func TestDetectUnknownKeys(t *testing.T) {
	tests := []struct {
		name     string
		doc      map[string]any
		expected []string
	}{
		{
			name:     "all known flat",
			doc:      map[string]any{"msys2.root": "x", "cmake.generator": "Ninja", "kit": "k"},
			expected: nil,
		},
		{
			name:     "all known nested",
			doc:      map[string]any{"mingw32": map[string]any{"root": "x", "provider": "cygwin32"}},
			expected: nil,
		},
		{
			name:     "schema key ignored",
			doc:      map[string]any{"$schema": "x"},
			expected: nil,
		},
		{
			name:     "mixed case keys",
			doc:      map[string]any{"MSYS2.Root": "x"},
			expected: nil,
		},
		{
			name:     "unknown top level",
			doc:      map[string]any{"wsl": "x"},
			expected: []string{`"wsl"`},
		},
		{
			name:     "unknown nested",
			doc:      map[string]any{"cmake": map[string]any{"buildDirectory": "out"}},
			expected: []string{`"cmake.builddirectory"`},
		},
		{
			name:     "scalar where section expected",
			doc:      map[string]any{"classifier": "legacy"},
			expected: []string{`"classifier"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := detectUnknownKeys(tt.doc)
			if len(warnings) != len(tt.expected) {
				t.Fatalf("warnings = %v, want %d", warnings, len(tt.expected))
			}
			for i, want := range tt.expected {
				if !strings.Contains(warnings[i], want) {
					t.Errorf("warnings[%d] = %q, want to contain %s", i, warnings[i], want)
				}
			}
		})
	}
}
