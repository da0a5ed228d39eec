// Package svcctx provides service context for dependency injection via
// context. Commands attach the constructed services once; components
// extract what they need.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/jackzampolin/outliner/internal/api"
	"github.com/jackzampolin/outliner/internal/config"
	"github.com/jackzampolin/outliner/internal/home"
	"github.com/jackzampolin/outliner/internal/providers"
)

// Services holds all core services that flow through context.
type Services struct {
	Config   *config.Manager
	Registry *providers.Registry
	Logger   *slog.Logger
	Home     *home.Dir
	Output   *api.Formatter
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// ConfigFrom extracts the config manager from context.
func ConfigFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.Config
	}
	return nil
}

// RegistryFrom extracts the provider registry from context.
func RegistryFrom(ctx context.Context) *providers.Registry {
	if s := ServicesFrom(ctx); s != nil {
		return s.Registry
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}

// OutputFrom extracts the output formatter from context.
func OutputFrom(ctx context.Context) *api.Formatter {
	if s := ServicesFrom(ctx); s != nil {
		return s.Output
	}
	return nil
}
