// Package main is the entry point for the storefront cart service.
//
// @title           Storefront Cart API
// @version         1.0.0
// @description     Session-scoped shopping cart for a headless storefront.
//
//	Keeps each shopper's cart with stock-bounded quantities, undoable removals and
//	promotion progress, and hands it over to the commerce platform's hosted checkout.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/storefront-cart
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  CartSession
// @in                          header
// @name                        X-Cart-Session
// @description                 Signed cart session token. Issued on the first request and returned in every response.
//
// @tag.name        Cart
// @tag.description Cart contents, removals and panel state
//
// @tag.name        Checkout
// @tag.description Hand-off to the hosted checkout
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/storefront-cart/config"
	_ "github.com/guttosm/storefront-cart/docs" // swagger docs
	"github.com/guttosm/storefront-cart/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port)
	server.OnShutdown(application.Close)

	if err := server.Run(); err != nil {
		application.Close(context.Background())
		log.Fatal().Err(err).Msg("Server error")
	}
}
