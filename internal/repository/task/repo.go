package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/task-notifier/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

// Repository reads tasks.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetByID returns the task with the given ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (model.Task, error) {
	query := `
		SELECT id, title, description, due_date
		FROM tasks
		WHERE id = $1;
    `

	var (
		t   model.Task
		due sql.NullTime
	)

	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Title, &t.Description, &due)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrTaskNotFound
		}

		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	if due.Valid {
		d := due.Time
		t.DueDate = &d
	}

	return t, nil
}
