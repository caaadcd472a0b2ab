package app

import (
	"net/http"
	"time"

	"oldenera-wiki/pkg/handlers"
	"oldenera-wiki/pkg/module"
	"oldenera-wiki/pkg/version"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ServerOptions configures the HTTP surface
type ServerOptions struct {
	ServiceName     string
	APIPrefix       string
	EnableTelemetry bool
}

// NewRouter builds the chi router with every module mounted on one Huma API.
// /health is always served at the root, outside the API prefix.
func NewRouter(opts ServerOptions, modules ...module.Module) (http.Handler, huma.API) {
	r := chi.NewRouter()

	// Global middleware
	r.Use(handlers.LoggerMiddleware(middleware.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(handlers.TracingMiddleware(opts.ServiceName, opts.EnableTelemetry))

	r.NotFound(handlers.NotFoundHandler())
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler())

	r.Get("/health", handlers.HealthHandler())

	humaConfig := huma.DefaultConfig("Olden Era Creature Wiki", version.Version)
	humaConfig.Info.Description = "Localized creature catalog of Heroes of Might and Magic: Olden Era"

	if opts.APIPrefix != "" {
		humaConfig.Servers = []*huma.Server{{URL: opts.APIPrefix, Description: "API prefix"}}
	}

	var api huma.API
	register := func(router chi.Router) {
		api = humachi.New(router, humaConfig)
		for _, mod := range modules {
			mod.RegisterUnifiedRoutes(api)
		}
	}

	if opts.APIPrefix == "" {
		register(r)
	} else {
		r.Route(opts.APIPrefix, func(prefixRouter chi.Router) {
			register(prefixRouter)
		})
	}

	return r, api
}
