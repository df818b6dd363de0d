package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/usergate/internal/dbx"
	"github.com/dmitrijs2005/usergate/internal/server/repositories/users"
)

// RepositoryManager vends repositories for one SQL dialect and owns its
// schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX, table string) users.Repository
}
