// Package cli provides the msyskit command line.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	errs "github.com/AndreyAkinshin/msyskit/internal/errors"
)

// Version is set at build time.
var Version = "dev"

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return Execute(context.Background(), args, os.Stdout, os.Stderr)
}

// Execute runs the command tree with explicit streams and returns an exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return ExecuteWith(ctx, args, stdout, stderr, Options{})
}

// Options overrides where settings files are discovered.
type Options struct {
	// WorkDir is where the project settings search starts. Empty means
	// the process working directory.
	WorkDir string
	// ConfigDir replaces the user config directory.
	ConfigDir string
}

// ExecuteWith is Execute with discovery overrides.
func ExecuteWith(ctx context.Context, args []string, stdout, stderr io.Writer, opts Options) int {
	a := newApp(stdout, stderr)
	a.workDir = opts.WorkDir
	a.configDir = opts.ConfigDir
	return a.execute(ctx, args)
}

func (a *app) execute(ctx context.Context, args []string) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return errs.ExitSuccess
	}

	a.out.ErrorPrefix("%v", err)
	return errs.GetExitCode(err)
}

// newRootCommand builds the command tree around a.
func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "msyskit",
		Short: "Resolve MSYS2, MinGW and Cygwin toolchain paths",
		Long: `msyskit resolves the paths of compilers and build tools for
POSIX-on-Windows environments: MSYS2, its MinGW/Clang/UCRT subsystems,
and Cygwin.

Provider roots come from settings keys such as msys2.root and
cygwin64.root, read from .msyskit.{json,yaml,toml} in the working
directory or a parent, the user config directory, MSYSKIT_* environment
variables, or flags.

An unrecognized build kit or a missing root prints nothing and exits 0.
Pass --strict to turn those cases into errors.`,
		Example: `  msyskit tool cc --kit "GCC 13 mingw64"
  msyskit tool cmake msys2
  msyskit root mingw64
  msyskit classify "Clang 17 clang64"
  msyskit config show --format yaml`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetVersionTemplate("msyskit {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	a.bindFlags(root)

	root.AddCommand(
		newClassifyCommand(a),
		newRootDirCommand(a),
		newBinCommand(a),
		newToolCommand(a),
		newPathCommand(a),
		newProvidersCommand(a),
		newConfigCommand(a),
		newCompletionCommand(),
		newVersionCommand(),
	)

	return root
}

// usageError marks argument and flag mistakes as configuration errors.
func usageError(err error) error {
	if err == nil {
		return nil
	}
	var me *errs.MsyskitError
	if errors.As(err, &me) {
		return err
	}
	return &errs.MsyskitError{Kind: errs.KindConfig, Message: err.Error(), Cause: err}
}

// checkArgs wraps a positional-argument validator so its errors exit with
// the configuration error code.
func checkArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return usageError(validate(cmd, args))
	}
}
