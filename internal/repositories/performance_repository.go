package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnhub/student-portal/internal/models"
)

type performanceRepository struct {
	db *sql.DB
}

// NewPerformanceRepository creates a new performance repository
func NewPerformanceRepository(db *sql.DB) *performanceRepository {
	return &performanceRepository{
		db: db,
	}
}

// GetSeries retrieves a student's average scores grouped per day, month, or
// year depending on the requested range
func (r *performanceRepository) GetSeries(ctx context.Context, userID int, rng models.PerformanceRange) ([]models.PerformancePoint, error) {
	var labelExpr, interval string
	switch rng {
	case models.PerformanceRangeWeekly:
		labelExpr = "DATE_FORMAT(recorded_at, '%Y-%m-%d')"
		interval = "7 DAY"
	case models.PerformanceRangeMonthly:
		labelExpr = "DATE_FORMAT(recorded_at, '%Y-%m')"
		interval = "12 MONTH"
	case models.PerformanceRangeYearly:
		labelExpr = "DATE_FORMAT(recorded_at, '%Y')"
		interval = "5 YEAR"
	default:
		return nil, fmt.Errorf("invalid performance range: %q", rng)
	}

	query := fmt.Sprintf(`
		SELECT %s AS label, AVG(score)
		FROM performance_scores
		WHERE user_id = ? AND recorded_at >= DATE_SUB(CURDATE(), INTERVAL %s)
		GROUP BY label
		ORDER BY label
	`, labelExpr, interval)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance series: %w", err)
	}
	defer rows.Close()

	var series []models.PerformancePoint
	for rows.Next() {
		var point models.PerformancePoint
		err := rows.Scan(&point.Label, &point.Score)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance point: %w", err)
		}
		series = append(series, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return series, nil
}

// GetSubjectAverages retrieves a student's average score per subject
func (r *performanceRepository) GetSubjectAverages(ctx context.Context, userID int) ([]models.SubjectScore, error) {
	query := `
		SELECT subject, AVG(score)
		FROM performance_scores
		WHERE user_id = ?
		GROUP BY subject
		ORDER BY subject
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subject averages: %w", err)
	}
	defer rows.Close()

	var subjects []models.SubjectScore
	for rows.Next() {
		var subject models.SubjectScore
		err := rows.Scan(&subject.Subject, &subject.Score)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subject score: %w", err)
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return subjects, nil
}
