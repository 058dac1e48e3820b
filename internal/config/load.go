package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	errs "github.com/AndreyAkinshin/msyskit/internal/errors"
)

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFile forces loading from a specific settings file when set.
	ConfigFile string
	// WorkDir is where project settings discovery starts. Empty means the
	// process working directory.
	WorkDir string
	// ConfigDir overrides the user config directory lookup when set.
	ConfigDir string
	// Flags maps settings keys to command-line flags that override them.
	Flags map[string]*pflag.Flag
}

// Load builds a viper-backed Store. Precedence, highest first: flags,
// MSYSKIT_* environment variables, the settings file, defaults. Finding
// no settings file is not an error; the returned path is then empty.
func Load(opts LoadOptions) (*viper.Viper, string, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetEnvPrefix(DefaultEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range opts.Flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, "", fmt.Errorf("bind flag %q: %w", flag.Name, err)
		}
	}

	path, err := resolveFile(opts)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return v, "", nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, "", &errs.MsyskitError{
			Kind:    errs.KindConfig,
			Key:     path,
			Message: "cannot read settings file",
			Cause:   err,
		}
	}

	return v, path, nil
}

// resolveFile picks the settings file: the explicit one, else the nearest
// project file, else the user file.
func resolveFile(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", errs.Configf("settings file not found: %s", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errs.Wrap(err, "cannot determine working directory")
		}
		workDir = wd
	}

	path, err := FindFileFrom(workDir)
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, ErrNoSettingsFile) {
		return "", err
	}

	userDir, err := UserConfigDir(opts.ConfigDir)
	if err != nil {
		// No user config dir (e.g. $HOME unset) means no user settings.
		return "", nil
	}
	path, err = FindUserFile(userDir)
	if errors.Is(err, ErrNoSettingsFile) {
		return "", nil
	}
	return path, err
}
