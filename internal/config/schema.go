// Package config reads the provider settings table msyskit resolves against.
package config

import (
	"fmt"

	"github.com/AndreyAkinshin/msyskit/internal/provider"
)

// Settings keys that are not per-provider.
const (
	KeyGenerator = "cmake.generator"
	KeyKit       = "kit"
	KeyLegacy    = "classifier.legacy"
)

// ProviderConfig is the per-provider part of the settings table.
// Zero values mean the setting is absent.
type ProviderConfig struct {
	Root     string      `json:"root,omitempty" yaml:"root,omitempty" toml:"root,omitempty"`
	Delegate provider.ID `json:"-" yaml:"-" toml:"-"`
}

// Settings is a snapshot of everything the resolver reads.
type Settings struct {
	Providers map[provider.ID]ProviderConfig
	// Generator is the configured build-system generator name, e.g. "Ninja"
	// or "MinGW Makefiles".
	Generator string
	// Kit is the build-kit label from the settings, used when no label is
	// supplied by the caller.
	Kit string
	// Legacy restricts classification to the rules without UCRT and Clang.
	Legacy bool
}

// Provider returns the configuration of id, or the zero value.
func (s *Settings) Provider(id provider.ID) ProviderConfig {
	if s == nil || s.Providers == nil {
		return ProviderConfig{}
	}
	return s.Providers[id]
}

// Rules returns the classification rules selected by the settings.
func (s *Settings) Rules() []provider.Rule {
	if s != nil && s.Legacy {
		return provider.LegacyRules()
	}
	return provider.DefaultRules()
}

// RootKey returns the settings key of a provider's root override.
func RootKey(id provider.ID) string {
	return fmt.Sprintf("%s.root", id)
}

// DelegateKey returns the settings key of a provider's delegation target.
func DelegateKey(id provider.ID) string {
	return fmt.Sprintf("%s.provider", id)
}
