// Package neo4j contains the concrete implementation of the relationship store
// using the official Neo4j Go driver. The graph is a derived projection of
// relational purchase facts and is never the source of truth.
package neo4j

import (
	"context"
	"log/slog"

	"artisanmarket/config"
	"artisanmarket/internal/domain/lifecycle"
	"artisanmarket/internal/errors"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Neo4j driver
func New(params Params) (neo4j.DriverWithContext, error) {
	if params.Config.Neo4j == nil {
		return nil, errors.New("neo4j configuration is missing")
	}

	driver, err := neo4j.NewDriverWithContext(
		params.Config.Neo4j.URI,
		neo4j.BasicAuth(params.Config.Neo4j.User, params.Config.Neo4j.Password, ""),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Neo4j driver")
	}

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := driver.VerifyConnectivity(ctx); err != nil {
				return errors.Wrap(err, "failed to verify Neo4j connectivity")
			}

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return driver.Close(stopCtx)
		},
	})

	return driver, nil
}
