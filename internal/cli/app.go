package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/AndreyAkinshin/msyskit/internal/config"
	errs "github.com/AndreyAkinshin/msyskit/internal/errors"
	"github.com/AndreyAkinshin/msyskit/internal/logx"
	"github.com/AndreyAkinshin/msyskit/internal/output"
	"github.com/AndreyAkinshin/msyskit/internal/provider"
	"github.com/AndreyAkinshin/msyskit/internal/toolchain"
)

// globalFlags holds the persistent flag values.
type globalFlags struct {
	configFile string
	kit        string
	generator  string
	legacy     bool
	separator  string
	strict     bool
	verbose    bool
	quiet      bool
}

// app carries the state shared by one command invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// workDir and configDir override settings discovery (tests).
	workDir   string
	configDir string

	flags globalFlags
	root  *cobra.Command

	out *output.Writer
	log *log.Logger
	sep toolchain.Separator

	store      *viper.Viper
	configPath string
	warned     map[string]bool
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		out:    output.NewFor(stdout, stderr),
		log:    logx.Discard(),
		sep:    toolchain.SeparatorSlash,
	}
}

func (a *app) bindFlags(root *cobra.Command) {
	a.root = root
	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configFile, "config", "", "settings file (default: nearest .msyskit.{json,yaml,toml}, then user config dir)")
	pf.StringVar(&a.flags.kit, "kit", "", "build kit label to classify (overrides the kit setting)")
	pf.StringVar(&a.flags.generator, "generator", "", "build generator name (overrides cmake.generator)")
	pf.BoolVar(&a.flags.legacy, "legacy", false, "classify without the UCRT and Clang rules")
	pf.StringVar(&a.flags.separator, "separator", "slash", "path separator for output: slash, backslash, native")
	pf.BoolVar(&a.flags.strict, "strict", false, "fail instead of printing nothing when a path cannot be resolved")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log resolution details to stderr")
	pf.BoolVarP(&a.flags.quiet, "quiet", "q", false, "log errors only")

	_ = root.RegisterFlagCompletionFunc("separator", cobra.FixedCompletions(
		[]string{"slash", "backslash", "native"}, cobra.ShellCompDirectiveNoFileComp))
	_ = root.RegisterFlagCompletionFunc("config", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "yaml", "yml", "toml"}, cobra.ShellCompDirectiveFilterFileExt
	})
}

// setup validates the global flags and prepares logging and output.
func (a *app) setup() error {
	if a.flags.quiet && a.flags.verbose {
		return errs.Config("--quiet and --verbose are mutually exclusive")
	}

	sep, err := toolchain.ParseSeparator(a.flags.separator)
	if err != nil {
		return errs.Config(err.Error())
	}
	a.sep = sep

	a.out.SetQuiet(a.flags.quiet)
	a.log = logx.New(a.stderr, logx.Options{Verbose: a.flags.verbose, Quiet: a.flags.quiet})
	return nil
}

// loadStore reads settings once per invocation.
func (a *app) loadStore() (*viper.Viper, error) {
	if a.store != nil {
		return a.store, nil
	}

	pf := a.root.PersistentFlags()
	store, path, err := config.Load(config.LoadOptions{
		ConfigFile: a.flags.configFile,
		WorkDir:    a.workDir,
		ConfigDir:  a.configDir,
		Flags: map[string]*pflag.Flag{
			config.KeyKit:       pf.Lookup("kit"),
			config.KeyGenerator: pf.Lookup("generator"),
			config.KeyLegacy:    pf.Lookup("legacy"),
		},
	})
	if err != nil {
		return nil, err
	}
	if path != "" {
		a.log.Debug("settings loaded", "file", path)
	} else {
		a.log.Debug("no settings file found")
	}

	a.store = store
	a.configPath = path
	return store, nil
}

// service builds the resolution facade over the loaded settings.
func (a *app) service() (*toolchain.Service, error) {
	store, err := a.loadStore()
	if err != nil {
		return nil, err
	}
	var kit toolchain.KitSource
	if a.flags.kit != "" {
		kit = toolchain.StaticKit(a.flags.kit)
	}
	return toolchain.NewService(config.StoreSource{Store: store, Warn: a.warn}, kit), nil
}

// settings returns a fresh snapshot of the loaded settings.
func (a *app) settings(ctx context.Context) (*config.Settings, error) {
	store, err := a.loadStore()
	if err != nil {
		return nil, err
	}
	return config.StoreSource{Store: store, Warn: a.warn}.Settings(ctx)
}

// warn logs msg once per invocation; settings are re-read for every
// resolution and report the same findings each time.
func (a *app) warn(msg string) {
	if a.warned[msg] {
		return
	}
	if a.warned == nil {
		a.warned = make(map[string]bool)
	}
	a.warned[msg] = true
	a.log.Warn(msg)
}

// emit prints a resolved value. Unrecognized kits and missing settings
// print nothing unless --strict is set.
func (a *app) emit(value string, err error) error {
	if err != nil {
		if errs.Degraded(err) && !a.flags.strict {
			a.log.Debug("nothing resolved", "reason", err)
			return nil
		}
		return err
	}
	a.out.Value(value)
	return nil
}

// emitPath is emit with the selected separator applied.
func (a *app) emitPath(p string, err error) error {
	if err != nil {
		return a.emit("", err)
	}
	return a.emit(a.sep.Apply(p), nil)
}

// providerArg parses an optional provider argument. No argument selects
// the active kit's provider.
func providerArg(args []string, index int) (provider.ID, error) {
	if len(args) <= index {
		return provider.None, nil
	}
	id, ok := provider.Parse(args[index])
	if !ok {
		return provider.None, errs.Configf("unknown provider %q (valid: %s)", args[index], joinNames(provider.Names()))
	}
	return id, nil
}
