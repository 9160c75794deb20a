package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const existsQuery = `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`

func TestCreateIfMissing_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
		WithArgs("numetry").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, createIfMissing(db, "numetry"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfMissing_Creates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
		WithArgs("numetry").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE DATABASE "numetry"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, createIfMissing(db, "numetry"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureDatabase_SkipsNonURLDSN(t *testing.T) {
	assert.NoError(t, ensureDatabase("host=localhost user=postgres dbname=numetry"))
}
