package departments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/common"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, dept *models.Department) (*models.Department, error) {

	query :=
		`INSERT INTO departments (dept_name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING dept_id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		dept.Name, dept.Email, dept.PasswordHash).Scan(&dept.ID, &dept.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return dept, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Department, error) {
	query :=
		`SELECT dept_id, dept_name, email, password_hash, created_at FROM departments
		 WHERE email = $1
		 `

	dept := &models.Department{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&dept.ID, &dept.Name, &dept.Email, &dept.PasswordHash, &dept.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return dept, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Department, error) {
	query := `SELECT dept_id, dept_name, email, password_hash, created_at FROM departments ORDER BY dept_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []models.Department
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.PasswordHash, &d.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
