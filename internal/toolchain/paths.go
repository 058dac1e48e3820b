package toolchain

import (
	"fmt"
	"runtime"
	"strings"
)

// normalize converts backslashes to forward slashes and drops trailing
// separators. A bare "/" is kept.
func normalize(p string) string {
	p = strings.ReplaceAll(strings.TrimSpace(p), `\`, "/")
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" && p != "" {
		return "/"
	}
	return trimmed
}

// join appends forward-slash separated elements to base.
func join(base string, elem ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, e := range elem {
		if !strings.HasSuffix(b.String(), "/") {
			b.WriteByte('/')
		}
		b.WriteString(e)
	}
	return b.String()
}

// Separator selects how resolved paths are written at the output boundary.
// Paths are always computed with forward slashes.
type Separator string

const (
	SeparatorSlash     Separator = "slash"
	SeparatorBackslash Separator = "backslash"
	SeparatorNative    Separator = "native"
)

// ParseSeparator validates a separator name. Empty means SeparatorSlash.
func ParseSeparator(s string) (Separator, error) {
	switch Separator(strings.ToLower(s)) {
	case "", SeparatorSlash:
		return SeparatorSlash, nil
	case SeparatorBackslash:
		return SeparatorBackslash, nil
	case SeparatorNative:
		return SeparatorNative, nil
	}
	return "", fmt.Errorf("invalid separator %q (valid: slash, backslash, native)", s)
}

// Apply rewrites p with the selected separator.
func (s Separator) Apply(p string) string {
	return s.apply(p, runtime.GOOS)
}

func (s Separator) apply(p, goos string) string {
	switch s {
	case SeparatorBackslash:
		return strings.ReplaceAll(p, "/", `\`)
	case SeparatorNative:
		if goos == "windows" {
			return strings.ReplaceAll(p, "/", `\`)
		}
	}
	return p
}
