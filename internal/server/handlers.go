package server

import (
	"time"

	"kamingo-landing/internal/handlers"
	"kamingo-landing/internal/middlewares"
	"kamingo-landing/internal/models"
	"kamingo-landing/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext, blocklist *models.Blocklist) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware)
	// The blocklist must run before sessions are loaded or anything is routed.
	r.Use(middlewares.BlocklistMiddleware(blocklist, ctx.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(ctx.SessionManager.LoadAndSave)

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	r.Handle("/static/*", web.StaticHandler())

	r.Get("/", ctx.HandlerFunc(handlers.GETHomeHandler))
	r.Get("/about", ctx.HandlerFunc(handlers.GETAboutHandler))
	r.Get("/contact", ctx.HandlerFunc(handlers.GETContactHandler))
	r.Get("/pricing", ctx.HandlerFunc(handlers.GETPricingHandler))
	r.Get("/error", ctx.HandlerFunc(handlers.GETErrorHandler))

	r.Get("/login", ctx.HandlerFunc(handlers.GETLoginHandler))
	r.Post("/login", ctx.HandlerFunc(handlers.POSTLoginHandler))
	r.Get("/auth", ctx.HandlerFunc(handlers.GETCallbackHandler))
	r.Get("/logout", ctx.HandlerFunc(handlers.GETLogoutHandler))

	r.Route(ctx.Config.Admin.PathPrefix, func(r chi.Router) {
		r.Use(middlewares.RequireAdmin)
		r.Get("/users", ctx.HandlerFunc(handlers.GETAdminUsersHandler))
		r.Get("/users/{id}", ctx.HandlerFunc(handlers.GETAdminUserHandler))
		r.Post("/users/{id}", ctx.HandlerFunc(handlers.POSTAdminUserHandler))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
