package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/msyskit/internal/provider"
	"github.com/AndreyAkinshin/msyskit/internal/toolchain"
)

// newCompletionCommand creates the `msyskit completion` command.
func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for msyskit.

Bash:
  eval "$(msyskit completion bash)"

Zsh:
  msyskit completion zsh > "${fpath[1]}/_msyskit"

Fish:
  msyskit completion fish > ~/.config/fish/completions/msyskit.fish

PowerShell:
  msyskit completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  checkArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// completeProviders completes provider names at argument position index.
func completeProviders(index int) cobra.CompletionFunc {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) != index {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return filterPrefix(provider.Names(), toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

// completeToolArgs completes `tool <tool> [provider]`.
func completeToolArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return filterPrefix(toolchain.ToolNames(), toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	return completeProviders(1)(cmd, args, toComplete)
}

func filterPrefix(names []string, prefix string) []string {
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, strings.ToLower(prefix)) {
			out = append(out, n)
		}
	}
	return out
}
