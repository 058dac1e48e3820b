package config

import "context"

// StoreSource supplies a fresh Settings snapshot from Store on every call.
type StoreSource struct {
	Store Store
	// Warn receives non-fatal findings such as ignored settings. May be nil.
	Warn func(msg string)
}

// Settings re-reads the store.
func (s StoreSource) Settings(ctx context.Context) (*Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	settings, warnings, err := FromStore(s.Store)
	if s.Warn != nil {
		for _, w := range warnings {
			s.Warn(w)
		}
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}
