package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/task-notifier/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// Repository reads user accounts.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetByID returns the user with the given ID.
func (r *Repository) GetByID(ctx context.Context, id string) (model.User, error) {
	query := `
		SELECT id, first_name, last_name, email
		FROM users
		WHERE id = $1;
    `

	var u model.User
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}

		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}
