// Package toolchain resolves provider roots and toolchain executable paths.
package toolchain

import (
	"fmt"
	"strings"
)

// Tool names an executable the resolver can locate.
type Tool string

const (
	Bash   Tool = "bash"
	GDB    Tool = "gdb"
	CMake  Tool = "cmake"
	Ninja  Tool = "ninja"
	Make   Tool = "make"
	Meson  Tool = "meson"
	CC     Tool = "cc"
	CXX    Tool = "cxx"
	FC     Tool = "fc"
	MPICC  Tool = "mpicc"
	MPICXX Tool = "mpicxx"
	MPIFC  Tool = "mpifort"

	// Generator stands for the build tool selected by the configured
	// generator name: make or ninja.
	Generator Tool = "generator"
)

var tools = []Tool{Bash, GDB, CMake, Ninja, Make, Meson, CC, CXX, FC, MPICC, MPICXX, MPIFC, Generator}

// Tools returns the full tool vocabulary.
func Tools() []Tool {
	out := make([]Tool, len(tools))
	copy(out, tools)
	return out
}

// ParseTool returns the Tool named by s (case-insensitive).
func ParseTool(s string) (Tool, error) {
	name := Tool(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range tools {
		if t == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tool %q (valid: %s)", s, strings.Join(ToolNames(), ", "))
}

// ToolNames returns the tool vocabulary as strings.
func ToolNames() []string {
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = string(t)
	}
	return names
}
