package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/projects/internal/app"
	"github.com/thenoetrevino/projects/internal/config"
	"github.com/thenoetrevino/projects/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
}

type cliContextKey struct{}

// NewCLI opens the configured database and builds the application container
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.Open(ctx, cfg.Database, app.WithLogger(logging.Logger))
	if err != nil {
		return nil, err
	}

	return &CLI{
		App:    application,
		Config: cfg,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.App == nil {
		return nil
	}
	return c.App.Close()
}

// WithCLI returns a context carrying the CLI instance
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliContextKey{}, c)
}

// GetCLIFromContext returns the CLI instance stored by the root command
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, errors.New("no context available")
	}
	c, ok := ctx.Value(cliContextKey{}).(*CLI)
	if !ok || c == nil {
		return nil, fmt.Errorf("CLI not initialized")
	}
	return c, nil
}
