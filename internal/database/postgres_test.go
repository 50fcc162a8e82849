package database

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsu-han/corpsite/internal/model"
)

func newPostgresWithMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return &PostgresStore{conn: db}, mock, db
}

func TestPostgresGetCategories(t *testing.T) {
	store, mock, db := newPostgresWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "manual").AddRow(2, "catalog")
	mock.ExpectQuery(`SELECT\s+id,\s*name\s+FROM\s+categories\s+ORDER\s+BY\s+id`).WillReturnRows(rows)

	cats, err := store.GetCategories()
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, model.Category{ID: 1, Name: "manual"}, cats[0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateNoticeReturnsID(t *testing.T) {
	store, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+notices\s+\(title,\s*content,\s*author,\s*date,\s*views\)\s+VALUES\s+\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*0\)\s+RETURNING\s+id`).
		WithArgs("t", "c", "a", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	id, err := store.CreateNotice(&model.NoticeItem{Title: "t", Content: "c", Author: "a"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdatePortfolioNotFound(t *testing.T) {
	store, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+portfolio`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.UpdatePortfolioItem(&model.PortfolioItem{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetSettingNotFound(t *testing.T) {
	store, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+value\s+FROM\s+settings`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := store.GetSetting("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetDownloadStoreFailure(t *testing.T) {
	store, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*title`).WithArgs("x").WillReturnError(errors.New("connection refused"))

	_, err := store.GetDownload("x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
