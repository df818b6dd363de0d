package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/usergate/internal/common"
	"github.com/dmitrijs2005/usergate/internal/logging"
	"github.com/dmitrijs2005/usergate/internal/server/models"
	"github.com/dmitrijs2005/usergate/internal/server/repositories/repomanager"
)

func openSQLite(t *testing.T) *SQLClient {
	t.Helper()
	dsn := fmt.Sprintf("file:backend_%s?mode=memory&cache=shared", t.Name())
	c, err := OpenSQLClient(context.Background(), DialectSQLite, dsn, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func decodeUsers(t *testing.T, rows []models.Row) []models.User {
	t.Helper()
	users := make([]models.User, len(rows))
	for i, row := range rows {
		require.NoError(t, json.Unmarshal(row, &users[i]), string(row))
	}
	return users
}

func TestSQLClient_InsertAndSelect(t *testing.T) {
	c := openSQLite(t)
	ctx := context.Background()

	rows, err := c.Insert(ctx, "users", []models.User{{Name: strPtr("Ada"), Mail: strPtr("ada@example.com")}})
	require.NoError(t, err)
	got := decodeUsers(t, rows)
	require.Len(t, got, 1)
	assert.Positive(t, got[0].ID)
	assert.Equal(t, "Ada", *got[0].Name)
	assert.NotNil(t, got[0].CreatedAt)

	rows, err = c.Select(ctx, "users", 1)
	require.NoError(t, err)
	sample := decodeUsers(t, rows)
	require.Len(t, sample, 1)
	assert.Equal(t, got[0].ID, sample[0].ID)
}

func TestSQLClient_InsertIsAtomic(t *testing.T) {
	c := openSQLite(t)
	ctx := context.Background()

	_, err := c.Insert(ctx, "users", []models.User{
		{Name: strPtr("Ada"), Mail: strPtr("ada@example.com")},
		{Name: strPtr("Grace")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")

	sample, err := c.Select(ctx, "users", 10)
	require.NoError(t, err)
	assert.Empty(t, sample, "first row must be rolled back")
}

func TestSQLClient_RejectsBadInput(t *testing.T) {
	c := openSQLite(t)
	ctx := context.Background()

	_, err := c.Insert(ctx, `users"`, []models.User{{}})
	assert.ErrorIs(t, err, common.ErrInvalidCollection)

	_, err = c.Select(ctx, "", 1)
	assert.ErrorIs(t, err, common.ErrInvalidCollection)

	_, err = c.Insert(ctx, "users", []models.User{})
	assert.ErrorIs(t, err, common.ErrEmptyInsert)
}

func TestSQLClient_UnknownTable(t *testing.T) {
	c := openSQLite(t)

	_, err := c.Select(context.Background(), "accounts", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestSQLClient_PostgresInsertRunsInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WithArgs("Ada", "ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "mail", "created_at"}).
			AddRow(int64(3), "Ada", "ada@example.com", time.Now()))
	mock.ExpectCommit()

	c := NewSQLClient(db, repomanager.NewPostgresRepositoryManager(), logging.Discard())

	rows, err := c.Insert(context.Background(), "users", []models.User{{Name: strPtr("Ada"), Mail: strPtr("ada@example.com")}})
	require.NoError(t, err)
	got := decodeUsers(t, rows)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLClient_PostgresInsertRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(fmt.Errorf("connection reset"))
	mock.ExpectRollback()

	c := NewSQLClient(db, repomanager.NewPostgresRepositoryManager(), logging.Discard())

	_, err = c.Insert(context.Background(), "users", []models.User{{Name: strPtr("Ada"), Mail: strPtr("ada@example.com")}})
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenSQLClient_UnknownDialect(t *testing.T) {
	_, err := OpenSQLClient(context.Background(), Dialect("mysql"), "dsn", logging.Discard())
	assert.ErrorIs(t, err, common.ErrUnknownBackend)
}
