package main

import (
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reviewhub/internal/api"
	"reviewhub/internal/domain/reviews"
	"reviewhub/internal/env"
	"reviewhub/internal/logger"
	"reviewhub/internal/router"
	"reviewhub/internal/store"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// globalFlags are shared by every subcommand.
type globalFlags struct {
	APIURL   string        `validate:"required,url"`
	Timeout  time.Duration `validate:"gte=0"`
	BasePath string        `validate:"startswith=/"`
	LogLevel string
}

type cli struct {
	flags   globalFlags
	logger  *zap.SugaredLogger
	storage store.Storage
	router  *router.Router
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "reviewsctl",
		Short: "Read and post reviews from the terminal",
		Long: `reviewsctl talks to the same reviews API as the web front end.

Defaults come from REVIEWS_API_URL, REVIEWS_API_TIMEOUT, BASE_PATH and
LOG_LEVEL, or a .env file in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				c.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.APIURL, "api-url", env.GetString("REVIEWS_API_URL", "http://localhost:8000/api"), "base URL of the reviews API")
	pf.DurationVar(&c.flags.Timeout, "timeout", env.GetDuration("REVIEWS_API_TIMEOUT", 30*time.Second), "request timeout")
	pf.StringVar(&c.flags.BasePath, "base-path", env.GetString("BASE_PATH", "/"), "base path the web routes are mounted under")
	pf.StringVar(&c.flags.LogLevel, "log-level", env.GetString("LOG_LEVEL", "warn"), "log level: debug|info|warn|error")

	root.AddCommand(c.listCmd(), c.addCmd(), c.resolveCmd())

	return root
}

// setup builds the shared collaborators. Logs go to logOut so they never
// interleave with command output.
func (c *cli) setup(logOut io.Writer) error {
	if err := validate.Struct(c.flags); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	lg, err := logger.New(c.flags.LogLevel, logOut)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	c.logger = lg

	rt, err := router.New(c.flags.BasePath, router.Routes)
	if err != nil {
		return err
	}
	c.router = rt

	client := api.New(api.Config{
		BaseURL: c.flags.APIURL,
		Timeout: c.flags.Timeout,
	})
	c.storage = store.NewStorage(reviews.NewService(client), lg)

	return nil
}
