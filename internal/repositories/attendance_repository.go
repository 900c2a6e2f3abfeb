package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnhub/student-portal/internal/models"
)

type attendanceRepository struct {
	db *sql.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *sql.DB) *attendanceRepository {
	return &attendanceRepository{
		db: db,
	}
}

// GetRecords retrieves a student's attendance records, optionally filtered by
// course and by month ("YYYY-MM")
func (r *attendanceRepository) GetRecords(ctx context.Context, userID int, courseID, month string) ([]models.AttendanceRecord, error) {
	query := `
		SELECT id, course_id, DATE_FORMAT(class_date, '%Y-%m-%d'), status
		FROM attendance_records
		WHERE user_id = ?
	`
	args := []any{userID}

	if courseID != "" {
		query += " AND course_id = ?"
		args = append(args, courseID)
	}
	if month != "" {
		query += " AND DATE_FORMAT(class_date, '%Y-%m') = ?"
		args = append(args, month)
	}
	query += " ORDER BY class_date"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var record models.AttendanceRecord
		err := rows.Scan(
			&record.ID,
			&record.CourseID,
			&record.Date,
			&record.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// GetStatusCounts retrieves all-time attendance counts per status for a student
func (r *attendanceRepository) GetStatusCounts(ctx context.Context, userID int) (models.AttendanceStats, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'present' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'absent' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'late' THEN 1 ELSE 0 END), 0)
		FROM attendance_records
		WHERE user_id = ?
	`

	var stats models.AttendanceStats
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.Present,
		&stats.Absent,
		&stats.Late,
	)
	if err != nil {
		return models.AttendanceStats{}, fmt.Errorf("failed to count attendance: %w", err)
	}

	stats.Total = stats.Present + stats.Absent + stats.Late
	return stats, nil
}
