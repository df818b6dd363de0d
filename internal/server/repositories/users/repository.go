// Package users stores user records in SQL backends. The same contract is
// implemented for PostgreSQL (pgx) and SQLite.
package users

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/usergate/internal/server/models"
)

type Repository interface {
	// Create inserts user and returns the stored row, backend-assigned
	// columns included.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// Sample returns at most limit rows in no particular order.
	Sample(ctx context.Context, limit int) ([]models.User, error)
}

// quoteIdent quotes a table name for both PostgreSQL and SQLite.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
