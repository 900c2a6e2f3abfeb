package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnhub/student-portal/internal/models"
)

type activityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new study activity repository
func NewActivityRepository(db *sql.DB) *activityRepository {
	return &activityRepository{
		db: db,
	}
}

// GetDaily retrieves a student's per-hour study minutes for one date ("YYYY-MM-DD")
func (r *activityRepository) GetDaily(ctx context.Context, userID int, date string) ([]models.ActivitySlot, error) {
	query := `
		SELECT hour_of_day, minutes
		FROM activity_logs
		WHERE user_id = ? AND activity_date = ?
		ORDER BY hour_of_day
	`

	rows, err := r.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	var slots []models.ActivitySlot
	for rows.Next() {
		var slot models.ActivitySlot
		err := rows.Scan(&slot.Hour, &slot.Minutes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity slot: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return slots, nil
}

// TotalForDate retrieves a student's total study minutes for one date
func (r *activityRepository) TotalForDate(ctx context.Context, userID int, date string) (int, error) {
	query := `
		SELECT COALESCE(SUM(minutes), 0)
		FROM activity_logs
		WHERE user_id = ? AND activity_date = ?
	`

	var total int
	err := r.db.QueryRowContext(ctx, query, userID, date).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum activity minutes: %w", err)
	}

	return total, nil
}
