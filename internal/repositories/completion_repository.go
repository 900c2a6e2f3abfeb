package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

type completionRepository struct {
	db *sql.DB
}

// NewCompletionRepository creates a new lesson completion repository
func NewCompletionRepository(db *sql.DB) *completionRepository {
	return &completionRepository{
		db: db,
	}
}

// Exists checks if a completion record exists for a lesson
func (r *completionRepository) Exists(ctx context.Context, userID int, lessonID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM lesson_completions WHERE user_id = ? AND lesson_id = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, userID, lessonID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check completion existence: %w", err)
	}

	return exists, nil
}

// Create creates a new completion record
func (r *completionRepository) Create(ctx context.Context, userID int, courseID, lessonID string) error {
	query := `
		INSERT INTO lesson_completions (user_id, course_id, lesson_id)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, userID, courseID, lessonID)
	if err != nil {
		return fmt.Errorf("failed to create completion record: %w", err)
	}

	return nil
}

// CountByUser counts all completed lessons for a student across courses
func (r *completionRepository) CountByUser(ctx context.Context, userID int) (int, error) {
	query := `SELECT COUNT(*) FROM lesson_completions WHERE user_id = ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count completions: %w", err)
	}

	return count, nil
}
