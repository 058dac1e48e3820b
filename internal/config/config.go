package config

import (
	"fmt"
	"strings"

	errs "github.com/AndreyAkinshin/msyskit/internal/errors"
	"github.com/AndreyAkinshin/msyskit/internal/provider"
)

// Store is read-only key/value access to user settings.
// *viper.Viper satisfies it.
type Store interface {
	GetString(key string) string
	GetBool(key string) bool
	IsSet(key string) bool
}

// FromStore builds a Settings snapshot from store. It returns warnings for
// settings that are present but have no effect, and a validation error for
// delegation targets that cannot be honored.
func FromStore(store Store) (*Settings, []string, error) {
	s := &Settings{
		Providers: make(map[provider.ID]ProviderConfig),
	}
	var warnings []string

	for _, id := range provider.All() {
		var pc ProviderConfig

		if root := strings.TrimSpace(store.GetString(RootKey(id))); root != "" {
			if derivedOnly(id) {
				warnings = append(warnings, fmt.Sprintf("%s is ignored: %s is always derived from %s", RootKey(id), id, RootKey(provider.MSYS2)))
			} else {
				pc.Root = root
			}
		}

		if name := strings.TrimSpace(store.GetString(DelegateKey(id))); name != "" {
			delegate, err := parseDelegate(id, name)
			if err != nil {
				return nil, warnings, err
			}
			pc.Delegate = delegate
		}

		if pc != (ProviderConfig{}) {
			s.Providers[id] = pc
		}
	}

	s.Generator = strings.TrimSpace(store.GetString(KeyGenerator))
	s.Kit = strings.TrimSpace(store.GetString(KeyKit))
	s.Legacy = store.GetBool(KeyLegacy)

	return s, warnings, nil
}

// derivedOnly reports whether id's root always comes from the base root.
func derivedOnly(id provider.ID) bool {
	return id.Family() == provider.FamilyLLVM || id == provider.UCRT64
}

// parseDelegate validates the "<id>.provider" setting. Only the MinGW cross
// toolchains may delegate, and only to the base or a compatibility layer.
func parseDelegate(id provider.ID, name string) (provider.ID, error) {
	key := DelegateKey(id)
	if id != provider.MinGW32 && id != provider.MinGW64 {
		return provider.None, errs.Validation(key, "only mingw32 and mingw64 can delegate to another provider")
	}

	delegate, ok := provider.Parse(name)
	if !ok {
		return provider.None, errs.Validation(key, fmt.Sprintf("unknown provider %q (valid: msys2, cygwin32, cygwin64)", name))
	}

	switch delegate.Family() {
	case provider.FamilyBase, provider.FamilyCompat:
		return delegate, nil
	}
	return provider.None, errs.Validation(key, fmt.Sprintf("cannot delegate to %q (valid: msys2, cygwin32, cygwin64)", name))
}
