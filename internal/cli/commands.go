package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/AndreyAkinshin/msyskit/internal/errors"
	"github.com/AndreyAkinshin/msyskit/internal/provider"
	"github.com/AndreyAkinshin/msyskit/internal/toolchain"
)

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

func newClassifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <label>",
		Short: "Print the provider a build-kit label belongs to",
		Long: `Print the provider a build-kit label belongs to.

Labels are matched case-insensitively in this order: msys, ucrt64,
mingw64, mingw32, clang64, clang32, cygwin64, cygwin. The first match
wins. With --legacy the ucrt and clang rules are skipped.`,
		Args: checkArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.settings(cmd.Context())
			if err != nil {
				return err
			}
			id := provider.Classify(args[0], settings.Rules())
			if id == provider.None {
				return a.emit("", errs.Unrecognized(args[0]))
			}
			a.log.Debug("classified", "label", args[0], "provider", id)
			return a.emit(id.String(), nil)
		},
	}
}

func newRootDirCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "root [provider]",
		Short:             "Print the installation root of a provider",
		Long:              "Print the installation root of a provider, or of the active kit's provider when none is given.",
		Args:              checkArgs(cobra.MaximumNArgs(1)),
		ValidArgsFunction: completeProviders(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := providerArg(args, 0)
			if err != nil {
				return err
			}
			svc, err := a.service()
			if err != nil {
				return err
			}
			return a.emitPath(svc.Root(cmd.Context(), id))
		},
	}
}

func newBinCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bin [provider]",
		Short: "Print the executable directory of a provider",
		Long: `Print the executable directory of a provider, or of the active kit's
provider when none is given. MSYS2 keeps its tools in <root>/usr/bin;
every other provider uses <root>/bin.`,
		Args:              checkArgs(cobra.MaximumNArgs(1)),
		ValidArgsFunction: completeProviders(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := providerArg(args, 0)
			if err != nil {
				return err
			}
			svc, err := a.service()
			if err != nil {
				return err
			}
			return a.emitPath(svc.BinDir(cmd.Context(), id))
		},
	}
}

func newToolCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tool <tool> [provider]",
		Short: "Print the path of a toolchain executable",
		Long: `Print the path of a toolchain executable under a provider, or under
the active kit's provider when none is given.

Tools: ` + joinNames(toolchain.ToolNames()) + `

The "generator" tool resolves to make or ninja depending on
cmake.generator.`,
		Args:              checkArgs(cobra.RangeArgs(1, 2)),
		ValidArgsFunction: completeToolArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := toolchain.ParseTool(args[0])
			if err != nil {
				return errs.Config(err.Error())
			}
			id, err := providerArg(args, 1)
			if err != nil {
				return err
			}
			svc, err := a.service()
			if err != nil {
				return err
			}
			if id == provider.None {
				return a.emitPath(svc.ActiveToolPath(cmd.Context(), tool))
			}
			return a.emitPath(svc.ToolPath(cmd.Context(), id, tool))
		},
	}
}

func newPathCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the PATH entry for the active kit",
		Args:  checkArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			return a.emitPath(svc.BinDir(cmd.Context(), provider.None))
		},
	}
}

func newProvidersCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List providers with their resolved roots",
		Args:  checkArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			active, err := svc.Classify(ctx)
			if err != nil && !errs.Degraded(err) {
				return err
			}

			var rows [][]string
			for _, id := range provider.All() {
				root, err := svc.Root(ctx, id)
				switch {
				case errs.Degraded(err):
					root = "-"
				case err != nil:
					return err
				default:
					root = a.sep.Apply(root)
				}

				bits := "-"
				if id.Bits() > 0 {
					bits = strconv.Itoa(id.Bits())
				}
				mark := ""
				if id == active {
					mark = "*"
				}
				rows = append(rows, []string{mark, id.String(), id.Family().Title(), bits, root})
			}

			a.out.Table([]string{"", "PROVIDER", "FAMILY", "BITS", "ROOT"}, rows)
			if active == provider.None {
				a.out.Hint("no active kit (set --kit or the kit setting)")
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the msyskit version",
		Args:  checkArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "msyskit %s\n", Version)
			return err
		},
	}
}
