package app

import (
	"github.com/samber/do/v2"

	"github.com/nfrund/authpage/internal/config"
	"github.com/nfrund/authpage/internal/formstore"
	"github.com/nfrund/authpage/internal/handlers"
	"github.com/nfrund/authpage/internal/pubsub"
	"github.com/nfrund/authpage/internal/rendering"
)

// Dependencies holds the services the HTTP server is built from.
type Dependencies struct {
	Config      *config.Config
	Forms       *formstore.Store
	Bus         *pubsub.WatermillBridge
	Renderer    *rendering.UniversalRenderer
	AuthHandler *handlers.AuthHandler
}

// NewInjector registers every service provider. Services are built lazily
// on first invocation and shared afterwards.
func NewInjector(cfg *config.Config) do.Injector {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.Provide(i, func(do.Injector) (*formstore.Store, error) {
		return formstore.New(), nil
	})
	do.Provide(i, func(do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})
	do.Provide(i, func(do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide(i, provideAuthHandler)
	return i
}

func provideAuthHandler(i do.Injector) (*handlers.AuthHandler, error) {
	forms, err := do.Invoke[*formstore.Store](i)
	if err != nil {
		return nil, err
	}
	bus, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return nil, err
	}
	return handlers.NewAuthHandler(forms, bus), nil
}

// Resolve builds the full dependency set from i.
func Resolve(i do.Injector) (Dependencies, error) {
	var (
		deps Dependencies
		err  error
	)
	if deps.Config, err = do.Invoke[*config.Config](i); err != nil {
		return deps, err
	}
	if deps.Forms, err = do.Invoke[*formstore.Store](i); err != nil {
		return deps, err
	}
	if deps.Bus, err = do.Invoke[*pubsub.WatermillBridge](i); err != nil {
		return deps, err
	}
	if deps.Renderer, err = do.Invoke[*rendering.UniversalRenderer](i); err != nil {
		return deps, err
	}
	if deps.AuthHandler, err = do.Invoke[*handlers.AuthHandler](i); err != nil {
		return deps, err
	}
	return deps, nil
}
