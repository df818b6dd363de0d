package backend

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/usergate/internal/common"
	"github.com/dmitrijs2005/usergate/internal/dbx"
	"github.com/dmitrijs2005/usergate/internal/logging"
	"github.com/dmitrijs2005/usergate/internal/server/models"
	"github.com/dmitrijs2005/usergate/internal/server/repositories/repomanager"
)

// Dialect names a database/sql driver supported by SQLClient.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite"
)

func (d Dialect) manager() (repomanager.RepositoryManager, error) {
	switch d {
	case DialectPostgres:
		return repomanager.NewPostgresRepositoryManager(), nil
	case DialectSQLite:
		return repomanager.NewSQLiteRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownBackend, string(d))
	}
}

// SQLClient serves the backend contract straight from a database, either the
// hosted project's Postgres or a local SQLite file.
type SQLClient struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewSQLClient(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) *SQLClient {
	return &SQLClient{db: db, repos: repos, logger: logger.With("module", "sql_backend")}
}

// OpenSQLClient opens dsn with the dialect's driver, checks connectivity and
// applies the embedded migrations.
func OpenSQLClient(ctx context.Context, dialect Dialect, dsn string, logger logging.Logger) (*SQLClient, error) {
	repos, err := dialect.manager()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	// SQLite serialises writers; one connection avoids "database is locked".
	if dialect == DialectSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := repos.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	return NewSQLClient(db, repos, logger), nil
}

// Insert stores all rows in one transaction; either every row is stored or
// none is.
func (c *SQLClient) Insert(ctx context.Context, collection string, users []models.User) ([]models.Row, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, common.ErrEmptyInsert
	}

	inserted := make([]models.User, 0, len(users))
	err := dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := c.repos.Users(tx, collection)
		for i := range users {
			u, err := repo.Create(ctx, &users[i])
			if err != nil {
				return err
			}
			inserted = append(inserted, *u)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug(ctx, "rows inserted", "collection", collection, "count", len(inserted))
	return models.RowsOf(inserted)
}

func (c *SQLClient) Select(ctx context.Context, collection string, limit int) ([]models.Row, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	if limit < 0 {
		limit = 0
	}

	users, err := c.repos.Users(c.db, collection).Sample(ctx, limit)
	if err != nil {
		return nil, err
	}
	return models.RowsOf(users)
}

func (c *SQLClient) Close() error {
	return c.db.Close()
}
