// Package provider defines the POSIX-on-Windows environments msyskit knows
// about and classifies build-kit labels into them.
package provider

import (
	"strings"

	"golang.org/x/text/cases"
)

// ID identifies a provider environment.
type ID int

const (
	None ID = iota
	MSYS2
	MinGW32
	MinGW64
	Cygwin32
	Cygwin64
	Clang32
	Clang64
	UCRT64
)

// Family groups providers that share naming and layout conventions.
type Family int

const (
	FamilyNone Family = iota
	// FamilyBase is the package-based environment itself.
	FamilyBase
	// FamilyCross is a GCC cross toolchain living under the base root
	// or delegated to a compatibility layer.
	FamilyCross
	// FamilyCompat is a compatibility-layer environment with its own root.
	FamilyCompat
	// FamilyLLVM is a clang-based subsystem under the base root.
	FamilyLLVM
)

var familyNames = map[Family]string{
	FamilyNone:   "none",
	FamilyBase:   "base",
	FamilyCross:  "cross",
	FamilyCompat: "compat",
	FamilyLLVM:   "llvm",
}

func (f Family) String() string {
	return familyNames[f]
}

var familyTitles = map[Family]string{
	FamilyNone:   "-",
	FamilyBase:   "Base",
	FamilyCross:  "Cross",
	FamilyCompat: "Compat",
	FamilyLLVM:   "LLVM",
}

// Title returns the display name of f.
func (f Family) Title() string {
	return familyTitles[f]
}

type info struct {
	name   string
	family Family
	bits   int
	subdir string
}

var infos = [...]info{
	None:     {"none", FamilyNone, 0, ""},
	MSYS2:    {"msys2", FamilyBase, 0, ""},
	MinGW32:  {"mingw32", FamilyCross, 32, "mingw32"},
	MinGW64:  {"mingw64", FamilyCross, 64, "mingw64"},
	Cygwin32: {"cygwin32", FamilyCompat, 32, ""},
	Cygwin64: {"cygwin64", FamilyCompat, 64, ""},
	Clang32:  {"clang32", FamilyLLVM, 32, "clang32"},
	Clang64:  {"clang64", FamilyLLVM, 64, "clang64"},
	UCRT64:   {"ucrt64", FamilyCross, 64, "ucrt64"},
}

func (id ID) info() info {
	if id < None || int(id) >= len(infos) {
		return infos[None]
	}
	return infos[id]
}

// String returns the settings key prefix for the provider ("msys2", "mingw64", ...).
func (id ID) String() string {
	return id.info().name
}

// Valid reports whether id names a real provider (not None).
func (id ID) Valid() bool {
	return id > None && int(id) < len(infos)
}

// Family returns the provider's family.
func (id ID) Family() Family {
	return id.info().family
}

// Bits returns the target word size, or 0 for the base environment.
func (id ID) Bits() int {
	return id.info().bits
}

// Subdir returns the fixed directory under the base root that holds the
// subsystem, or "" for providers that have their own root.
func (id ID) Subdir() string {
	return id.info().subdir
}

// CrossPrefix returns the target triplet prefix used by cross compilers
// for this word size ("i686-w64-mingw32-" or "x86_64-w64-mingw32-").
func (id ID) CrossPrefix() string {
	switch id.Bits() {
	case 32:
		return "i686-w64-mingw32-"
	case 64:
		return "x86_64-w64-mingw32-"
	}
	return ""
}

// All returns every real provider in declaration order.
func All() []ID {
	return []ID{MSYS2, MinGW32, MinGW64, Cygwin32, Cygwin64, Clang32, Clang64, UCRT64}
}

// Parse returns the provider named by s. Matching is case-insensitive and
// ignores surrounding whitespace.
func Parse(s string) (ID, bool) {
	s = cases.Fold().String(strings.TrimSpace(s))
	for _, id := range All() {
		if id.String() == s {
			return id, true
		}
	}
	return None, false
}

// Names returns the names of every real provider.
func Names() []string {
	ids := All()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}
