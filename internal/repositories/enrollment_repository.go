package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnhub/student-portal/internal/models"
)

type enrollmentRepository struct {
	db *sql.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *sql.DB) *enrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

// Get retrieves a student's enrollment in a course
func (r *enrollmentRepository) Get(ctx context.Context, userID int, courseID string) (*models.Enrollment, error) {
	query := `
		SELECT course_id, user_id, is_paid, COALESCE(current_lesson_id, '')
		FROM enrollments
		WHERE user_id = ? AND course_id = ?
		LIMIT 1
	`

	var enrollment models.Enrollment
	err := r.db.QueryRowContext(ctx, query, userID, courseID).Scan(
		&enrollment.CourseID,
		&enrollment.UserID,
		&enrollment.IsPaid,
		&enrollment.CurrentLessonID,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("course not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	return &enrollment, nil
}

// CountByUser counts a student's enrollments
func (r *enrollmentRepository) CountByUser(ctx context.Context, userID int) (int, error) {
	query := `SELECT COUNT(*) FROM enrollments WHERE user_id = ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}

	return count, nil
}

// SetCurrentLesson updates the in-progress lesson pointer for an enrollment
func (r *enrollmentRepository) SetCurrentLesson(ctx context.Context, userID int, courseID, lessonID string) error {
	query := `
		UPDATE enrollments
		SET current_lesson_id = ?
		WHERE user_id = ? AND course_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, lessonID, userID, courseID)
	if err != nil {
		return fmt.Errorf("failed to set current lesson: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("course not found")
	}

	return nil
}
