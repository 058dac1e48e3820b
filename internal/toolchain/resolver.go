package toolchain

import (
	"regexp"

	"github.com/AndreyAkinshin/msyskit/internal/config"
	errs "github.com/AndreyAkinshin/msyskit/internal/errors"
	"github.com/AndreyAkinshin/msyskit/internal/provider"
)

// Generator name patterns, tested in order.
var (
	ninjaGenerator = regexp.MustCompile(`(?i)ninja`)
	makeGenerator  = regexp.MustCompile(`(?i)makefiles?`)
)

// Resolver derives roots and executable paths from a settings snapshot.
// It holds no other state; identical settings give identical results.
type Resolver struct {
	settings *config.Settings
}

// NewResolver creates a resolver over settings. A nil snapshot behaves
// like an empty one.
func NewResolver(settings *config.Settings) *Resolver {
	if settings == nil {
		settings = &config.Settings{}
	}
	return &Resolver{settings: settings}
}

// Settings returns the snapshot the resolver reads.
func (r *Resolver) Settings() *config.Settings {
	return r.settings
}

// Root returns the installation root of id with forward slashes.
//
//   - msys2, cygwin32, cygwin64: the configured root.
//   - mingw32, mingw64: the delegate's root when delegating to a
//     compatibility layer, else the configured override, else
//     <msys2 root>/<subdir>.
//   - clang32, clang64, ucrt64: always <msys2 root>/<subdir>.
func (r *Resolver) Root(id provider.ID) (string, error) {
	if !id.Valid() {
		return "", errs.Unrecognized("")
	}

	pc := r.settings.Provider(id)

	switch id {
	case provider.MSYS2, provider.Cygwin32, provider.Cygwin64:
		if pc.Root == "" {
			return "", errs.ConfigMissing(id.String(), config.RootKey(id))
		}
		return normalize(pc.Root), nil

	case provider.MinGW32, provider.MinGW64:
		if r.delegated(id) {
			return r.Root(pc.Delegate)
		}
		if pc.Root != "" {
			return normalize(pc.Root), nil
		}
	}

	base := r.settings.Provider(provider.MSYS2).Root
	if base == "" {
		return "", errs.ConfigMissing(id.String(), config.RootKey(provider.MSYS2))
	}
	return join(normalize(base), id.Subdir()), nil
}

// BinDir returns the directory holding id's executables: <root>/usr/bin
// for msys2 and <root>/bin for everything else.
func (r *Resolver) BinDir(id provider.ID) (string, error) {
	root, err := r.Root(id)
	if err != nil {
		return "", err
	}
	if id == provider.MSYS2 {
		return join(root, "usr", "bin"), nil
	}
	return join(root, "bin"), nil
}

// ExeName returns the executable file name of tool under id. The word
// size for cross-compiler prefixes comes from id.
func (r *Resolver) ExeName(id provider.ID, tool Tool) (string, error) {
	if !id.Valid() {
		return "", errs.Unrecognized("")
	}

	if tool == Generator {
		t, err := r.Generator()
		if err != nil {
			return "", err
		}
		tool = t
	}

	delegated := r.delegated(id)

	switch tool {
	case Bash, GDB, CMake, Ninja, Meson, MPICC, MPICXX, MPIFC:
		return string(tool) + ".exe", nil

	case Make:
		switch {
		case id.Family() == provider.FamilyBase, id.Family() == provider.FamilyCompat, delegated:
			return "make.exe", nil
		}
		return "mingw32-make.exe", nil

	case CC, CXX, FC:
		name := compilerName(id, tool)
		if delegated {
			name = id.CrossPrefix() + name
		}
		return name + ".exe", nil
	}

	return "", errs.Newf("unknown tool %q", tool)
}

// ToolPath returns <bin dir>/<exe name> for tool under id.
func (r *Resolver) ToolPath(id provider.ID, tool Tool) (string, error) {
	exe, err := r.ExeName(id, tool)
	if err != nil {
		return "", err
	}
	bin, err := r.BinDir(id)
	if err != nil {
		return "", err
	}
	return join(bin, exe), nil
}

// Generator maps the configured generator name to the build tool it
// drives. Names matching neither pattern yield ErrGeneratorUnspecified.
func (r *Resolver) Generator() (Tool, error) {
	name := r.settings.Generator
	switch {
	case name == "":
		return "", errs.GeneratorUnspecified("")
	case ninjaGenerator.MatchString(name):
		return Ninja, nil
	case makeGenerator.MatchString(name):
		return Make, nil
	}
	return "", errs.GeneratorUnspecified(name)
}

// delegated reports whether id is a MinGW toolchain hosted by a
// compatibility layer.
func (r *Resolver) delegated(id provider.ID) bool {
	if id != provider.MinGW32 && id != provider.MinGW64 {
		return false
	}
	return r.settings.Provider(id).Delegate.Family() == provider.FamilyCompat
}

func compilerName(id provider.ID, tool Tool) string {
	llvm := id.Family() == provider.FamilyLLVM
	switch tool {
	case CC:
		if llvm {
			return "clang"
		}
		return "gcc"
	case CXX:
		if llvm {
			return "clang++"
		}
		return "g++"
	case FC:
		if llvm {
			return "flang"
		}
		return "gfortran"
	}
	return string(tool)
}
