// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/storefront-cart/config"
	"github.com/guttosm/storefront-cart/internal/http"
)

// App is the wired application: the router plus everything that must be stopped
// once the server no longer accepts requests.
type App struct {
	Router *gin.Engine

	closers   []func(ctx context.Context)
	closeOnce sync.Once
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Logging)

	app := &App{}

	storage, err := InitializeStorage(cfg.Storage)
	if err != nil {
		return nil, err
	}
	app.onClose(storage.Close)

	checkoutComponents, err := InitializeCheckout(cfg.Checkout)
	if err != nil {
		app.Close(context.Background())
		return nil, err
	}

	services, err := InitializeServices(cfg, storage.Store, checkoutComponents.Creator)
	if err != nil {
		app.Close(context.Background())
		return nil, err
	}
	// Registered after storage so the persister drains before the store closes.
	app.onClose(func(context.Context) { services.Stop() })

	routerComponents := InitializeRouter(cfg, services, storage, checkoutComponents)
	app.onClose(func(context.Context) { routerComponents.Stop() })

	app.Router = http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)
	return app, nil
}

func (a *App) onClose(fn func(ctx context.Context)) {
	a.closers = append(a.closers, fn)
}

// Close releases resources in reverse order of creation. Later calls do nothing.
func (a *App) Close(ctx context.Context) {
	a.closeOnce.Do(func() {
		for i := len(a.closers) - 1; i >= 0; i-- {
			a.closers[i](ctx)
		}
		log.Info().Msg("Application resources released")
	})
}
