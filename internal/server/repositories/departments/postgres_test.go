package departments

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/common"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/models"
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

	q := `(?s)^INSERT\s+INTO\s+departments\s*\(dept_name,\s*email,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+dept_id,\s*created_at\s*$`

	created := time.Now()
	rows := sqlmock.NewRows([]string{"dept_id", "created_at"}).AddRow(int64(1), created)
	mock.ExpectQuery(q).
		WithArgs("Computer Science", "cs@dept.edu", "hash").
		WillReturnRows(rows)

	d := &models.Department{Name: "Computer Science", Email: "cs@dept.edu", PasswordHash: "hash"}
	got, err := repo.Create(context.Background(), d)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 1 || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected department: %+v", got)
	}
}

func TestGetByEmail_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+dept_id,\s*dept_name,\s*email,\s*password_hash,\s*created_at\s+FROM\s+departments\s+WHERE\s+email\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"dept_id", "dept_name", "email", "password_hash", "created_at"}).
		AddRow(int64(2), "Mathematics", "math@dept.edu", "hash", time.Now())
	mock.ExpectQuery(q).WithArgs("math@dept.edu").WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "math@dept.edu")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != 2 || got.Name != "Mathematics" {
		t.Fatalf("unexpected department: %+v", got)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).WithArgs("ghost@dept.edu").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@dept.edu")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetAll_ReturnsAllRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"dept_id", "dept_name", "email", "password_hash", "created_at"}).
		AddRow(int64(1), "Computer Science", "cs@dept.edu", "h1", time.Now()).
		AddRow(int64(2), "Mathematics", "math@dept.edu", "h2", time.Now())
	mock.ExpectQuery(`SELECT .* FROM departments ORDER BY dept_id`).WillReturnRows(rows)

	got, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(got) != 2 || got[1].Name != "Mathematics" {
		t.Fatalf("unexpected departments: %+v", got)
	}
}
