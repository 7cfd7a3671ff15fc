package accounts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fotolab/foto/internal/common"
	"github.com/fotolab/foto/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+accounts\b.*VALUES\s*\(\$1,\s*\$2\)\s*$`

	mock.ExpectExec(q).
		WithArgs("alice", []byte("hash")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Account{Username: "alice", Password: []byte("hash")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+accounts`).
		WithArgs("alice", []byte("hash")).
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.Account{Username: "alice", Password: []byte("hash")})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByUsername_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+username,\s*password,\s*created_at\s+FROM\s+accounts\s+WHERE\s+username\s*=\s*\$1\s*$`

	created := time.Now()
	rows := sqlmock.NewRows([]string{"username", "password", "created_at"}).
		AddRow("alice", []byte("hash"), created)

	mock.ExpectQuery(q).WithArgs("alice").WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Username != "alice" || string(got.Password) != "hash" || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+username,\s*password`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT\s+EXISTS\s*\(\s*SELECT\s+1\s+FROM\s+accounts\s+WHERE\s+username\s*=\s*\$1\s*\)`

	mock.ExpectQuery(q).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	got, err := repo.Exists(context.Background(), "alice")
	if err != nil || !got {
		t.Fatalf("Exists: got (%v, %v)", got, err)
	}

	mock.ExpectQuery(q).WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	got, err = repo.Exists(context.Background(), "bob")
	if err != nil || got {
		t.Fatalf("Exists: got (%v, %v)", got, err)
	}
}
