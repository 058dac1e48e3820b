package toolchain

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`C:\msys64`, "C:/msys64"},
		{`C:\msys64\`, "C:/msys64"},
		{"C:/msys64/", "C:/msys64"},
		{"  D:/custom  ", "D:/custom"},
		{"/", "/"},
		{`\\`, "/"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalize(tt.input); got != tt.expected {
				t.Errorf("normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		base     string
		elem     []string
		expected string
	}{
		{"C:/msys64", []string{"usr", "bin"}, "C:/msys64/usr/bin"},
		{"/", []string{"bin"}, "/bin"},
		{"C:/msys64", nil, "C:/msys64"},
	}

	for _, tt := range tests {
		if got := join(tt.base, tt.elem...); got != tt.expected {
			t.Errorf("join(%q, %v) = %q, want %q", tt.base, tt.elem, got, tt.expected)
		}
	}
}

func TestParseSeparator(t *testing.T) {
	tests := []struct {
		input    string
		expected Separator
		wantErr  bool
	}{
		{"", SeparatorSlash, false},
		{"slash", SeparatorSlash, false},
		{"BACKSLASH", SeparatorBackslash, false},
		{"native", SeparatorNative, false},
		{"colon", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeparator(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSeparator(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseSeparator(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSeparator_Apply(t *testing.T) {
	const p = "C:/msys64/usr/bin/cmake.exe"

	tests := []struct {
		sep      Separator
		goos     string
		expected string
	}{
		{SeparatorSlash, "windows", p},
		{SeparatorBackslash, "linux", `C:\msys64\usr\bin\cmake.exe`},
		{SeparatorNative, "windows", `C:\msys64\usr\bin\cmake.exe`},
		{SeparatorNative, "linux", p},
	}

	for _, tt := range tests {
		t.Run(string(tt.sep)+"/"+tt.goos, func(t *testing.T) {
			if got := tt.sep.apply(p, tt.goos); got != tt.expected {
				t.Errorf("apply() = %q, want %q", got, tt.expected)
			}
		})
	}
}
