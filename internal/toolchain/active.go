package toolchain

import (
	"context"

	"github.com/AndreyAkinshin/msyskit/internal/config"
	errs "github.com/AndreyAkinshin/msyskit/internal/errors"
	"github.com/AndreyAkinshin/msyskit/internal/provider"
)

// SettingsSource supplies the settings table. It is consulted once per
// resolution and never cached.
type SettingsSource interface {
	Settings(ctx context.Context) (*config.Settings, error)
}

// KitSource supplies the currently selected build-kit label. An empty
// label means no kit is selected.
type KitSource interface {
	KitLabel(ctx context.Context) (string, error)
}

// KitFunc adapts a function to KitSource.
type KitFunc func(ctx context.Context) (string, error)

// KitLabel calls f.
func (f KitFunc) KitLabel(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticKit returns a KitSource that always reports label.
func StaticKit(label string) KitSource {
	return KitFunc(func(context.Context) (string, error) {
		return label, nil
	})
}

// Commands is the lookup surface offered to build tooling. Passing
// provider.None to the per-provider methods selects the active kit's provider.
type Commands interface {
	Classify(ctx context.Context) (provider.ID, error)
	Root(ctx context.Context, id provider.ID) (string, error)
	BinDir(ctx context.Context, id provider.ID) (string, error)
	ToolPath(ctx context.Context, id provider.ID, tool Tool) (string, error)
	ActiveToolPath(ctx context.Context, tool Tool) (string, error)
}

// Service answers Commands by re-reading settings and the kit label on
// every call. Each call is an independent pass; nothing is shared between calls.
type Service struct {
	settings SettingsSource
	kit      KitSource
}

var _ Commands = (*Service)(nil)

// NewService creates a Service. When kit is nil the label comes from the
// "kit" setting.
func NewService(settings SettingsSource, kit KitSource) *Service {
	return &Service{settings: settings, kit: kit}
}

// Classify returns the provider of the active build kit, or an
// ErrUnrecognized error when the label matches no provider.
func (s *Service) Classify(ctx context.Context) (provider.ID, error) {
	_, id, err := s.resolve(ctx, provider.None)
	return id, err
}

// Root returns the root of id, or of the active provider when id is None.
func (s *Service) Root(ctx context.Context, id provider.ID) (string, error) {
	r, id, err := s.resolve(ctx, id)
	if err != nil {
		return "", err
	}
	return r.Root(id)
}

// BinDir returns the binary directory of id, or of the active provider.
func (s *Service) BinDir(ctx context.Context, id provider.ID) (string, error) {
	r, id, err := s.resolve(ctx, id)
	if err != nil {
		return "", err
	}
	return r.BinDir(id)
}

// ToolPath returns the path of tool under id, or under the active provider.
func (s *Service) ToolPath(ctx context.Context, id provider.ID, tool Tool) (string, error) {
	r, id, err := s.resolve(ctx, id)
	if err != nil {
		return "", err
	}
	return r.ToolPath(id, tool)
}

// ActiveToolPath returns the path of tool under the active kit's provider.
// An unrecognized kit yields ErrUnrecognized with no fallback.
func (s *Service) ActiveToolPath(ctx context.Context, tool Tool) (string, error) {
	return s.ToolPath(ctx, provider.None, tool)
}

// resolve reads a fresh settings snapshot and, when id is None, classifies
// the kit label into the active provider.
func (s *Service) resolve(ctx context.Context, id provider.ID) (*Resolver, provider.ID, error) {
	settings, err := s.settings.Settings(ctx)
	if err != nil {
		return nil, provider.None, err
	}
	r := NewResolver(settings)

	if id != provider.None {
		return r, id, nil
	}

	label := settings.Kit
	if s.kit != nil {
		label, err = s.kit.KitLabel(ctx)
		if err != nil {
			return nil, provider.None, err
		}
	}

	id = provider.Classify(label, settings.Rules())
	if id == provider.None {
		return nil, provider.None, errs.Unrecognized(label)
	}
	return r, id, nil
}
