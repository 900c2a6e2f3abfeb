package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnhub/student-portal/internal/models"
)

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// GetEnrolledOverview retrieves all courses a student is enrolled in with
// lesson totals and completion counts. Percentages are computed by the caller.
func (r *courseRepository) GetEnrolledOverview(ctx context.Context, userID int) ([]models.CourseOverviewItem, error) {
	query := `
		SELECT
			c.id,
			c.title,
			c.subject,
			COUNT(DISTINCT l.id) AS total_lessons,
			COUNT(DISTINCT lc.id) AS completed_lessons
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		LEFT JOIN lessons l ON l.course_id = c.id
		LEFT JOIN lesson_completions lc ON lc.lesson_id = l.id AND lc.user_id = e.user_id
		WHERE e.user_id = ?
		GROUP BY c.id, c.title, c.subject
		ORDER BY c.title
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrolled courses: %w", err)
	}
	defer rows.Close()

	var courses []models.CourseOverviewItem
	for rows.Next() {
		var course models.CourseOverviewItem
		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Subject,
			&course.TotalLessons,
			&course.CompletedLessons,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// GetByID retrieves a course by ID
func (r *courseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `SELECT id, title, subject FROM courses WHERE id = ? LIMIT 1`

	var course models.Course
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Subject,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("course not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	return &course, nil
}
