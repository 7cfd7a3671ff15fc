package sessions

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fotolab/foto/internal/common"
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

	q := `(?s)^\s*INSERT\s+INTO\s+sessions\b.*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*$`

	mock.ExpectExec(q).
		WithArgs("sid123", "alice", sqlmock.AnyArg()). // expires_at = time.Now().Add(validity)
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), "alice", "sid123", 30*time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+sessions`).
		WithArgs("sid123", "alice", sqlmock.AnyArg()).
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), "alice", "sid123", time.Hour)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFind_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+sessionid,\s*username,\s*expires_at,\s*created_at\s+FROM\s+sessions\s+WHERE\s+sessionid\s*=\s*\$1\s*$`

	expires := time.Now().Add(10 * time.Minute)
	rows := sqlmock.NewRows([]string{"sessionid", "username", "expires_at", "created_at"}).
		AddRow("sid123", "alice", expires, time.Now())

	mock.ExpectQuery(q).WithArgs("sid123").WillReturnRows(rows)

	got, err := repo.Find(context.Background(), "sid123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "sid123" || got.Username != "alice" || !got.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestFind_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+sessionid`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), "nope")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*DELETE\s+FROM\s+sessions\s+WHERE\s+sessionid\s*=\s*\$1\s*$`

	mock.ExpectExec(q).WithArgs("sid123").WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(context.Background(), "sid123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// deleting an absent session is fine
	mock.ExpectExec(q).WithArgs("ghost").WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(context.Background(), "ghost"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
