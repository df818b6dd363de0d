// Package backend provides the handles the gateway uses to reach the hosted
// data service. A handle is built once at startup from configuration and is
// safe for concurrent use by many requests.
package backend

import (
	"context"
	"fmt"
	"regexp"

	"github.com/dmitrijs2005/usergate/internal/common"
	"github.com/dmitrijs2005/usergate/internal/logging"
	"github.com/dmitrijs2005/usergate/internal/server/config"
	"github.com/dmitrijs2005/usergate/internal/server/models"
)

// Client is the capability set the gateway depends on.
type Client interface {
	// Insert stores users in collection and returns the stored rows as the
	// backend rendered them.
	Insert(ctx context.Context, collection string, users []models.User) ([]models.Row, error)
	// Select returns at most limit rows of collection.
	Select(ctx context.Context, collection string, limit int) ([]models.Row, error)
	// Close releases connections held by the handle.
	Close() error
}

var collectionName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

func checkCollection(name string) error {
	if !collectionName.MatchString(name) {
		return fmt.Errorf("%w: %q", common.ErrInvalidCollection, name)
	}
	return nil
}

// New builds the client selected by cfg.Backend. The configuration must
// already be valid.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger) (Client, error) {
	switch cfg.Backend {
	case config.BackendREST:
		return NewRESTClient(cfg.SupabaseURL, cfg.SupabaseKey, nil)
	case config.BackendPostgres:
		return OpenSQLClient(ctx, DialectPostgres, cfg.DatabaseDSN, logger)
	case config.BackendSQLite:
		return OpenSQLClient(ctx, DialectSQLite, cfg.DatabaseDSN, logger)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownBackend, cfg.Backend)
	}
}
