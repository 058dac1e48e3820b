package provider

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected ID
		ok       bool
	}{
		{"msys2", MSYS2, true},
		{"MinGW64", MinGW64, true},
		{" mingw32 ", MinGW32, true},
		{"cygwin32", Cygwin32, true},
		{"cygwin64", Cygwin64, true},
		{"clang32", Clang32, true},
		{"clang64", Clang64, true},
		{"ucrt64", UCRT64, true},
		{"none", None, false},
		{"", None, false},
		{"cygwin", None, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("Parse(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestParse_RoundTripsAllNames(t *testing.T) {
	for _, id := range All() {
		got, ok := Parse(id.String())
		if !ok || got != id {
			t.Errorf("Parse(%q) = (%v, %v), want (%v, true)", id.String(), got, ok, id)
		}
	}
}

func TestID_Attributes(t *testing.T) {
	tests := []struct {
		id     ID
		family Family
		bits   int
		subdir string
		prefix string
	}{
		{MSYS2, FamilyBase, 0, "", ""},
		{MinGW32, FamilyCross, 32, "mingw32", "i686-w64-mingw32-"},
		{MinGW64, FamilyCross, 64, "mingw64", "x86_64-w64-mingw32-"},
		{Cygwin32, FamilyCompat, 32, "", "i686-w64-mingw32-"},
		{Cygwin64, FamilyCompat, 64, "", "x86_64-w64-mingw32-"},
		{Clang32, FamilyLLVM, 32, "clang32", "i686-w64-mingw32-"},
		{Clang64, FamilyLLVM, 64, "clang64", "x86_64-w64-mingw32-"},
		{UCRT64, FamilyCross, 64, "ucrt64", "x86_64-w64-mingw32-"},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			if got := tt.id.Family(); got != tt.family {
				t.Errorf("Family() = %v, want %v", got, tt.family)
			}
			if got := tt.id.Bits(); got != tt.bits {
				t.Errorf("Bits() = %d, want %d", got, tt.bits)
			}
			if got := tt.id.Subdir(); got != tt.subdir {
				t.Errorf("Subdir() = %q, want %q", got, tt.subdir)
			}
			if got := tt.id.CrossPrefix(); got != tt.prefix {
				t.Errorf("CrossPrefix() = %q, want %q", got, tt.prefix)
			}
			if !tt.id.Valid() {
				t.Error("Valid() = false, want true")
			}
		})
	}
}

func TestID_OutOfRange(t *testing.T) {
	bogus := ID(42)
	if bogus.Valid() {
		t.Error("ID(42).Valid() = true")
	}
	if got := bogus.String(); got != "none" {
		t.Errorf("ID(42).String() = %q, want %q", got, "none")
	}
	if None.Valid() {
		t.Error("None.Valid() = true")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 8 {
		t.Fatalf("len(Names()) = %d, want 8", len(names))
	}
	if names[0] != "msys2" || names[len(names)-1] != "ucrt64" {
		t.Errorf("Names() = %v", names)
	}
}

func TestFamily_Title(t *testing.T) {
	tests := []struct {
		family Family
		want   string
	}{
		{FamilyBase, "Base"},
		{FamilyCross, "Cross"},
		{FamilyCompat, "Compat"},
		{FamilyLLVM, "LLVM"},
	}
	for _, tt := range tests {
		if got := tt.family.Title(); got != tt.want {
			t.Errorf("%v.Title() = %q, want %q", tt.family, got, tt.want)
		}
	}
}

func TestFamily_String(t *testing.T) {
	if got := FamilyCompat.String(); got != "compat" {
		t.Errorf("FamilyCompat.String() = %q", got)
	}
	if got := FamilyLLVM.String(); got != "llvm" {
		t.Errorf("FamilyLLVM.String() = %q", got)
	}
}
