package config

import (
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/AndreyAkinshin/msyskit/internal/errors"
)

func TestValidateFile_Valid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json flat", "s.json", `{"$schema": "x", "msys2.root": "C:\\msys64", "mingw32.provider": "cygwin32"}`},
		{"json nested", "s.json", `{"msys2": {"root": "C:/msys64"}, "cmake": {"generator": "Ninja"}}`},
		{"yaml", "s.yaml", "msys2:\n  root: C:/msys64\nclassifier:\n  legacy: true\n"},
		{"yml", "s.yml", "kit: MinGW64\n"},
		{"toml", "s.toml", "kit = \"MinGW64\"\n[mingw64]\nprovider = \"cygwin64\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)

			warnings, err := ValidateFile(path)
			if err != nil {
				t.Fatalf("ValidateFile() error = %v", err)
			}
			if len(warnings) != 0 {
				t.Errorf("warnings = %v, want none", warnings)
			}
		})
	}
}

func TestValidateFile_Warnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	writeFile(t, path, `{
		"msys2": {"root": "C:/msys64", "color": "blue"},
		"editor.fontSize": 12,
		"clang64.root": "D:/clang"
	}`)

	warnings, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile() error = %v", err)
	}

	joined := strings.Join(warnings, "\n")
	for _, want := range []string{`"msys2.color"`, `"editor.fontsize"`, "clang64.root is ignored"} {
		if !strings.Contains(joined, want) {
			t.Errorf("warnings missing %s:\n%s", want, joined)
		}
	}
}

func TestValidateFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"malformed json", "s.json", `{"msys2.root": `},
		{"malformed yaml", "s.yaml", "msys2: [root\n"},
		{"malformed toml", "s.toml", "kit = \n"},
		{"schema violation", "s.json", `{"msys2.root": 42}`},
		{"bad delegate", "s.json", `{"mingw64.provider": "clang64"}`},
		{"unsupported format", "s.ini", "kit=msys2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)

			_, err := ValidateFile(path)
			if err == nil {
				t.Fatal("ValidateFile() error = nil, want error")
			}
			if code := errs.GetExitCode(err); code != errs.ExitConfigError {
				t.Errorf("exit code = %d, want %d (%v)", code, errs.ExitConfigError, err)
			}
		})
	}
}

func TestValidateFile_Missing(t *testing.T) {
	_, err := ValidateFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("ValidateFile() error = nil, want error")
	}
}

func TestDecodeDocument_Formats(t *testing.T) {
	doc, err := DecodeDocument("x.yaml", []byte("msys2:\n  root: C:/m\n"))
	if err != nil {
		t.Fatal(err)
	}
	nested, ok := doc["msys2"].(map[string]any)
	if !ok || nested["root"] != "C:/m" {
		t.Errorf("DecodeDocument(yaml) = %v", doc)
	}

	doc, err = DecodeDocument("x.TOML", []byte("\"msys2.root\" = \"C:/m\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if doc["msys2.root"] != "C:/m" {
		t.Errorf("DecodeDocument(toml) = %v", doc)
	}
}
