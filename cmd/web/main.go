package main

import (
	"errors"
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"github.com/joho/godotenv"

	"reviewhub/internal/api"
	"reviewhub/internal/domain/reviews"
	"reviewhub/internal/env"
	"reviewhub/internal/logger"
	"reviewhub/internal/metrics"
	"reviewhub/internal/ratelimiter"
	"reviewhub/internal/router"
	"reviewhub/internal/store"
)

var version = "0.3.0"

// loadConfig reads the environment. A .env file, when present, has already
// been loaded into it.
func loadConfig() config {
	return config{
		Addr:     env.GetString("ADDR", ":8080"),
		Env:      env.GetString("ENV", "development"),
		BasePath: env.GetString("BASE_PATH", "/"),
		LogLevel: env.GetString("LOG_LEVEL", "info"),
		ReviewsAPI: reviewsAPIConfig{
			URL:             env.GetString("REVIEWS_API_URL", "http://localhost:8000/api"),
			Timeout:         env.GetDuration("REVIEWS_API_TIMEOUT", 30*time.Second),
			RefreshInterval: env.GetDuration("REVIEWS_REFRESH_INTERVAL", 0),
		},
		Auth: authConfig{
			Basic: basicConfig{
				User: env.GetString("AUTH_BASIC_USER", "admin"),
				Pass: env.GetString("AUTH_BASIC_PASS", ""),
			},
		},
		RateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 200),
			TimeFrame:            5 * time.Second,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", false),
		},
	}
}

//	@title			Reviewhub
//	@description	Web front end for the reviews service.
//	@BasePath		/

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg := loadConfig()
	if err := Validate.Struct(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logger.New(cfg.LogLevel, os.Stdout)
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	client := api.New(api.Config{
		BaseURL: cfg.ReviewsAPI.URL,
		Timeout: cfg.ReviewsAPI.Timeout,
	})

	bus := evbus.New()
	storage := store.NewStorage(reviews.NewService(client), logger, store.WithBus(bus))
	if err := storage.Reviews.Subscribe(func(s store.Snapshot) {
		metrics.SetCachedReviews(len(s.Reviews))
	}); err != nil {
		logger.Fatal(err)
	}

	rt, err := router.New(cfg.BasePath, router.Routes)
	if err != nil {
		logger.Fatal(err)
	}

	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.RateLimiter.RequestsPerTimeFrame,
		cfg.RateLimiter.TimeFrame,
	)
	defer rateLimiter.Stop()

	app := &application{
		config:      cfg,
		logger:      logger,
		store:       storage,
		router:      rt,
		rateLimiter: rateLimiter,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))
	expvar.Publish("reviews", expvar.Func(func() any {
		return len(storage.Reviews.Snapshot().Reviews)
	}))

	mux, err := app.mount()
	if err != nil {
		logger.Fatal(err)
	}

	logger.Fatal(app.run(mux))
}
