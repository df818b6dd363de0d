package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/usergate/internal/dbx"
	"github.com/dmitrijs2005/usergate/internal/server/models"
)

type PostgresRepository struct {
	db    dbx.DBTX
	table string
}

func NewPostgresRepository(db dbx.DBTX, table string) *PostgresRepository {
	return &PostgresRepository{db: db, table: table}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query := fmt.Sprintf(
		`INSERT INTO %s (name, mail)
		 VALUES ($1, $2)
		 RETURNING id, name, mail, created_at
		 `, quoteIdent(r.table))

	created := &models.User{}
	err := r.db.QueryRowContext(ctx, query, user.Name, user.Mail).
		Scan(&created.ID, &created.Name, &created.Mail, &created.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

func (r *PostgresRepository) Sample(ctx context.Context, limit int) ([]models.User, error) {

	query := fmt.Sprintf(
		`SELECT id, name, mail, created_at FROM %s
		 LIMIT $1
		 `, quoteIdent(r.table))

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Mail, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
