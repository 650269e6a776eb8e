package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/task-notifier/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Repository provides methods to interact with notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new notification and returns it with the assigned ID.
func (r *Repository) Create(ctx context.Context, n model.Notification) (model.Notification, error) {
	query := `
		INSERT INTO notifications (
		    user_id, task_id, subject, message, created_at, is_read, type
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
    `

	var taskID sql.NullInt64
	if n.TaskID != nil {
		taskID = sql.NullInt64{Int64: *n.TaskID, Valid: true}
	}

	err := r.db.Master.QueryRowContext(
		ctx, query, n.UserID, taskID, n.Subject, n.Message, n.CreatedAt, n.IsRead, string(n.Type),
	).Scan(&n.ID)
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// GetByID retrieves a notification by its ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (model.Notification, error) {
	query := `
		SELECT id, user_id, task_id, subject, message, created_at, is_read, type
		FROM notifications
		WHERE id = $1;
    `

	n, err := scanNotification(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// GetByUser retrieves all notifications of a user in insertion order.
// It reads from the master so that a record created just before is listed.
func (r *Repository) GetByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, task_id, subject, message, created_at, is_read, type
		FROM notifications
		WHERE user_id = $1
		ORDER BY id;
    `

	rows, err := r.db.Master.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]model.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}

// MarkAsRead sets the read flag of a notification.
func (r *Repository) MarkAsRead(ctx context.Context, id int64) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNotification(s scanner) (model.Notification, error) {
	var (
		n      model.Notification
		taskID sql.NullInt64
		typ    string
	)

	if err := s.Scan(&n.ID, &n.UserID, &taskID, &n.Subject, &n.Message, &n.CreatedAt, &n.IsRead, &typ); err != nil {
		return model.Notification{}, err
	}

	if taskID.Valid {
		id := taskID.Int64
		n.TaskID = &id
	}
	n.Type = model.Topic(typ)

	return n, nil
}
