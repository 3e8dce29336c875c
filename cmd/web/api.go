package main

import (
	"context"
	"errors"
	"expvar"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "reviewhub/docs" // registers the swagger spec
	"reviewhub/internal/metrics"
	"reviewhub/internal/ratelimiter"
	"reviewhub/internal/router"
	"reviewhub/internal/store"
)

type application struct {
	config      config
	store       store.Storage
	logger      *zap.SugaredLogger
	router      *router.Router
	rateLimiter ratelimiter.Limiter
	templates   *template.Template
}

type config struct {
	Addr        string `validate:"required"`
	Env         string `validate:"oneof=development staging production"`
	BasePath    string `validate:"startswith=/"`
	LogLevel    string
	ReviewsAPI  reviewsAPIConfig
	Auth        authConfig
	RateLimiter ratelimiter.Config
}

type reviewsAPIConfig struct {
	URL             string        `validate:"required,url"`
	Timeout         time.Duration `validate:"gte=0"`
	RefreshInterval time.Duration `validate:"gte=0"`
}

type authConfig struct {
	Basic basicConfig
}

type basicConfig struct {
	User string
	Pass string
}

func (app *application) mount() (http.Handler, error) {
	if app.templates == nil {
		tmpl, err := parseTemplates()
		if err != nil {
			return nil, err
		}
		app.templates = tmpl
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Use(app.RateLimiterMiddleware)

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.NotFound(app.notFoundHandler)
	r.MethodNotAllowed(app.methodNotAllowedHandler)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("doc.json")))

		// Debug endpoints stay unmounted until a password is configured.
		if app.config.Auth.Basic.Pass != "" {
			r.Group(func(r chi.Router) {
				r.Use(app.BasicAuthMiddleware())
				r.Get("/debug/vars", expvar.Handler().ServeHTTP)
				r.Get("/debug/metrics", metrics.Handler().ServeHTTP)
			})
		}
	})

	views := map[string]http.Handler{
		"home":    http.HandlerFunc(app.homeView),
		"reviews": http.HandlerFunc(app.reviewsView),
	}
	if err := app.router.Register(r, views); err != nil {
		return nil, err
	}

	return r, nil
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.Addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if interval := app.config.ReviewsAPI.RefreshInterval; interval > 0 {
		app.refreshReviewsEvery(ctx, interval)
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit
		cancel()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.Addr, "env", app.config.Env, "base", app.router.Href("/"))

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.Addr, "env", app.config.Env)

	return nil
}
