package cli

import (
	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/msyskit/internal/config"
	errs "github.com/AndreyAkinshin/msyskit/internal/errors"
)

// newConfigCommand creates the `msyskit config` command tree.
func newConfigCommand(a *app) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect msyskit settings",
		Long: `Inspect msyskit settings.

Settings are read from, highest priority first:
  - flags (--kit, --generator, --legacy)
  - MSYSKIT_* environment variables (MSYSKIT_MSYS2_ROOT for msys2.root)
  - the settings file: --config, else the nearest .msyskit.{json,yaml,yml,toml},
    else config.{json,yaml,yml,toml} in the user config directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(newConfigShowCommand(a), newConfigValidateCommand(a))
	return cfgCmd
}

func newConfigShowCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  checkArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.settings(cmd.Context())
			if err != nil {
				return err
			}
			if err := config.Encode(a.out.Out(), settings.Document(), format); err != nil {
				return errs.Config(err.Error())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatJSON, "output format: json, yaml, toml")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{config.FormatJSON, config.FormatYAML, config.FormatTOML}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func newConfigValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a settings file",
		Long: `Validate a settings file against the settings schema and the
delegation rules. Without an argument the file msyskit would load is checked.
Unknown or ineffective keys are reported as warnings.`,
		Args: checkArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				if _, err := a.loadStore(); err != nil {
					return err
				}
				path = a.configPath
			}
			if path == "" {
				return errs.Config("no settings file found")
			}

			warnings, err := config.ValidateFile(path)
			for _, w := range warnings {
				a.out.Warning("%s", w)
			}
			if err != nil {
				return err
			}

			a.out.Success("%s is valid", path)
			return nil
		},
	}
}
