package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnhub/student-portal/internal/models"
)

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// GetByCourseID retrieves all lessons of a course with per-student completion
// and current-lesson flags. Date and time come back as zero-padded strings,
// empty when the lesson is unscheduled.
func (r *lessonRepository) GetByCourseID(ctx context.Context, courseID string, userID int) ([]models.Lesson, error) {
	query := `
		SELECT
			l.id,
			l.title,
			COALESCE(DATE_FORMAT(l.scheduled_date, '%Y-%m-%d'), '') AS scheduled_date,
			COALESCE(TIME_FORMAT(l.scheduled_time, '%H:%i'), '') AS scheduled_time,
			l.duration_minutes,
			l.lesson_type,
			CASE WHEN lc.id IS NOT NULL THEN 1 ELSE 0 END AS completed,
			CASE WHEN e.current_lesson_id = l.id THEN 1 ELSE 0 END AS current
		FROM lessons l
		JOIN enrollments e ON e.course_id = l.course_id AND e.user_id = ?
		LEFT JOIN lesson_completions lc ON lc.lesson_id = l.id AND lc.user_id = ?
		WHERE l.course_id = ?
		ORDER BY l.scheduled_date, l.scheduled_time
	`

	rows, err := r.db.QueryContext(ctx, query, userID, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		var completed, current int
		err := rows.Scan(
			&lesson.ID,
			&lesson.Title,
			&lesson.Date,
			&lesson.Time,
			&lesson.Duration,
			&lesson.Type,
			&completed,
			&current,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lesson.IsCompleted = completed == 1
		lesson.IsCurrent = current == 1
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// GetCourseID retrieves the course a lesson belongs to
func (r *lessonRepository) GetCourseID(ctx context.Context, lessonID string) (string, error) {
	query := `SELECT course_id FROM lessons WHERE id = ? LIMIT 1`

	var courseID string
	err := r.db.QueryRowContext(ctx, query, lessonID).Scan(&courseID)

	if err == sql.ErrNoRows {
		return "", fmt.Errorf("lesson not found")
	}
	if err != nil {
		return "", fmt.Errorf("failed to get lesson course: %w", err)
	}

	return courseID, nil
}
