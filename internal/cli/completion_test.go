package cli

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	errs "github.com/AndreyAkinshin/msyskit/internal/errors"
)

func TestCompletionScripts(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, t.TempDir(), "completion", shell)
			if code != errs.ExitSuccess {
				t.Fatalf("exit code = %d, stderr = %q", code, stderr)
			}
			if !strings.Contains(stdout, "msyskit") {
				t.Errorf("%s completion does not mention msyskit", shell)
			}
		})
	}
}

func TestCompletion_InvalidShell(t *testing.T) {
	code, _, _ := runCLI(t, t.TempDir(), "completion", "tcsh")
	if code != errs.ExitConfigError {
		t.Errorf("exit code = %d, want %d", code, errs.ExitConfigError)
	}
}

func TestCompleteToolArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		toComplete string
		expected   []string
	}{
		{"tool prefix", nil, "mpi", []string{"mpicc", "mpicxx", "mpifort"}},
		{"provider prefix", []string{"cc"}, "cl", []string{"clang32", "clang64"}},
		{"uppercase prefix", []string{"cc"}, "CYG", []string{"cygwin32", "cygwin64"}},
		{"nothing after provider", []string{"cc", "msys2"}, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, directive := completeToolArgs(&cobra.Command{}, tt.args, tt.toComplete)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("completions = %v, want %v", got, tt.expected)
			}
			if directive != cobra.ShellCompDirectiveNoFileComp {
				t.Errorf("directive = %v, want NoFileComp", directive)
			}
		})
	}
}

func TestCompleteProviders(t *testing.T) {
	got, _ := completeProviders(0)(&cobra.Command{}, nil, "m")
	expected := []string{"msys2", "mingw32", "mingw64"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("completions = %v, want %v", got, expected)
	}
}
