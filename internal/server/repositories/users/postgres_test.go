package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/usergate/internal/server/models"
)

const (
	insertQuery = `(?s)^INSERT\s+INTO\s+"users"\s*\(name,\s*mail\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id,\s*name,\s*mail,\s*created_at\s*$`
	sampleQuery = `(?s)^SELECT\s+id,\s*name,\s*mail,\s*created_at\s+FROM\s+"users"\s+LIMIT\s+\$1\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db, "users"), mock, db
}

func strPtr(s string) *string { return &s }

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "mail", "created_at"}).
		AddRow(int64(42), "Ada", "ada@example.com", now)
	mock.ExpectQuery(insertQuery).
		WithArgs("Ada", "ada@example.com").
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), &models.User{Name: strPtr("Ada"), Mail: strPtr("ada@example.com")})
	require.NoError(t, err)

	assert.Equal(t, int64(42), got.ID)
	require.NotNil(t, got.Name)
	assert.Equal(t, "Ada", *got.Name)
	require.NotNil(t, got.Mail)
	assert.Equal(t, "ada@example.com", *got.Mail)
	require.NotNil(t, got.CreatedAt)
	assert.True(t, now.Equal(got.CreatedAt.Time))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_ForwardsNulls(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(insertQuery).
		WithArgs("Ada", nil).
		WillReturnError(errors.New(`null value in column "mail" violates not-null constraint`))

	_, err := repo.Create(context.Background(), &models.User{Name: strPtr("Ada")})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*not-null constraint`), err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSample_ReturnsRows(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "name", "mail", "created_at"}).
		AddRow(int64(1), "Ada", "ada@example.com", time.Now())
	mock.ExpectQuery(sampleQuery).WithArgs(1).WillReturnRows(rows)

	got, err := repo.Sample(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ada", *got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSample_EmptyIsNotNil(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(sampleQuery).WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "mail", "created_at"}))

	got, err := repo.Sample(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPostgresSample_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(sampleQuery).WithArgs(1).WillReturnError(errors.New("db down"))

	_, err := repo.Sample(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: db down")
}

func TestPostgresSample_RowError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "name", "mail", "created_at"}).
		AddRow(int64(1), "Ada", "ada@example.com", time.Now()).
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery(sampleQuery).WithArgs(1).WillReturnRows(rows)

	_, err := repo.Sample(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken row")
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"users"`, quoteIdent("users"))
	assert.Equal(t, `"we""ird"`, quoteIdent(`we"ird`))
}
