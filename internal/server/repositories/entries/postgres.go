package entries

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert relies on the sequence behind entry_id for ordering: ids are
// assigned inside the statement, so no two inserts ever share one and ids
// survive restarts without reuse.
func (r *PostgresRepository) Insert(ctx context.Context, entry *models.DataEntry) (*models.DataEntry, error) {

	query :=
		`INSERT INTO data_entries (dept_id, entry_type, data_content)
		 VALUES ($1, $2, $3)
		 RETURNING entry_id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		entry.DepartmentID, entry.EntryType, entry.Content).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return entry, nil
}

// ReadAll is a single statement, so MVCC gives it a consistent snapshot of
// the insert order.
func (r *PostgresRepository) ReadAll(ctx context.Context) ([]models.ExportRow, error) {
	query :=
		`SELECT de.entry_id, d.dept_name, de.entry_type, de.data_content, de.created_at
		 FROM data_entries de
		 JOIN departments d ON de.dept_id = d.dept_id
		 ORDER BY de.entry_id
		 `

	return r.queryRows(ctx, query)
}

func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]models.ExportRow, error) {
	query :=
		`SELECT de.entry_id, d.dept_name, de.entry_type, de.data_content, de.created_at
		 FROM data_entries de
		 JOIN departments d ON de.dept_id = d.dept_id
		 ORDER BY de.entry_id DESC
		 LIMIT $1
		 `

	return r.queryRows(ctx, query, limit)
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM data_entries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}
	return count, nil
}

func (r *PostgresRepository) queryRows(ctx context.Context, query string, args ...any) ([]models.ExportRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []models.ExportRow
	for rows.Next() {
		var row models.ExportRow
		if err := rows.Scan(&row.ID, &row.Department, &row.EntryType, &row.Content, &row.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
