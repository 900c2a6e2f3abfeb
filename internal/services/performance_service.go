package services

import (
	"context"
	"fmt"

	"github.com/learnhub/student-portal/internal/models"
)

// PerformanceRepository defines methods for performance data access
type PerformanceRepository interface {
	// GetSeries retrieves average scores grouped per label for the range
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "rng" is the time window.
	//
	// Returns the series and an error if any.
	GetSeries(ctx context.Context, userID int, rng models.PerformanceRange) ([]models.PerformancePoint, error)
	// GetSubjectAverages retrieves the average score per subject
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	//
	// Returns the subject scores and an error if any.
	GetSubjectAverages(ctx context.Context, userID int) ([]models.SubjectScore, error)
}

type performanceService struct {
	performanceRepo PerformanceRepository
}

// NewPerformanceService creates a new performance service
func NewPerformanceService(performanceRepo PerformanceRepository) *performanceService {
	return &performanceService{
		performanceRepo: performanceRepo,
	}
}

// GetPerformance retrieves the score time series and subject breakdown for a
// range. An empty range defaults to weekly.
func (s *performanceService) GetPerformance(ctx context.Context, userID int, rangeStr string) (*models.PerformanceResponse, error) {
	rng := models.PerformanceRange(rangeStr)
	switch rng {
	case "":
		rng = models.PerformanceRangeWeekly
	case models.PerformanceRangeWeekly, models.PerformanceRangeMonthly, models.PerformanceRangeYearly:
	default:
		return nil, fmt.Errorf("invalid performance range: %q", rangeStr)
	}

	series, err := s.performanceRepo.GetSeries(ctx, userID, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to get performance series: %w", err)
	}

	subjects, err := s.performanceRepo.GetSubjectAverages(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subject averages: %w", err)
	}

	response := &models.PerformanceResponse{
		Range:    rng,
		Series:   series,
		Subjects: subjects,
	}
	if len(series) > 0 {
		var sum float64
		for _, point := range series {
			sum += point.Score
		}
		response.AverageScore = sum / float64(len(series))
	}

	return response, nil
}
