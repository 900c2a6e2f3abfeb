package services

import (
	"context"
	"errors"
	"testing"

	"github.com/learnhub/student-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPerformanceRepository is a mock implementation of PerformanceRepository
type mockPerformanceRepository struct {
	series      []models.PerformancePoint
	subjects    []models.SubjectScore
	seriesErr   error
	subjectsErr error
	gotRange    models.PerformanceRange
}

func (m *mockPerformanceRepository) GetSeries(ctx context.Context, userID int, rng models.PerformanceRange) ([]models.PerformancePoint, error) {
	m.gotRange = rng
	if m.seriesErr != nil {
		return nil, m.seriesErr
	}
	return m.series, nil
}

func (m *mockPerformanceRepository) GetSubjectAverages(ctx context.Context, userID int) ([]models.SubjectScore, error) {
	if m.subjectsErr != nil {
		return nil, m.subjectsErr
	}
	return m.subjects, nil
}

func TestPerformanceService_GetPerformance(t *testing.T) {
	series := []models.PerformancePoint{
		{Label: "Mon", Score: 70},
		{Label: "Tue", Score: 80},
		{Label: "Wed", Score: 90},
	}
	subjects := []models.SubjectScore{
		{Subject: "Grammar", Score: 82.5},
		{Subject: "Listening", Score: 74},
	}

	tests := []struct {
		name            string
		rangeStr        string
		performanceRepo *mockPerformanceRepository
		expectedError   string
		expectedRange   models.PerformanceRange
		expectedAverage float64
	}{
		{
			name:            "success with weekly range",
			rangeStr:        "weekly",
			performanceRepo: &mockPerformanceRepository{series: series, subjects: subjects},
			expectedRange:   models.PerformanceRangeWeekly,
			expectedAverage: 80,
		},
		{
			name:            "empty range defaults to weekly",
			rangeStr:        "",
			performanceRepo: &mockPerformanceRepository{series: series},
			expectedRange:   models.PerformanceRangeWeekly,
			expectedAverage: 80,
		},
		{
			name:            "yearly range is passed through",
			rangeStr:        "yearly",
			performanceRepo: &mockPerformanceRepository{},
			expectedRange:   models.PerformanceRangeYearly,
		},
		{
			name:            "invalid range",
			rangeStr:        "daily",
			performanceRepo: &mockPerformanceRepository{},
			expectedError:   "invalid performance range",
		},
		{
			name:            "series failure",
			rangeStr:        "weekly",
			performanceRepo: &mockPerformanceRepository{seriesErr: errors.New("database error")},
			expectedError:   "failed to get performance series",
		},
		{
			name:            "subjects failure",
			rangeStr:        "weekly",
			performanceRepo: &mockPerformanceRepository{series: series, subjectsErr: errors.New("database error")},
			expectedError:   "failed to get subject averages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPerformanceService(tt.performanceRepo)

			resp, err := svc.GetPerformance(context.Background(), 1, tt.rangeStr)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.expectedRange, resp.Range)
			assert.Equal(t, tt.expectedRange, tt.performanceRepo.gotRange)
			assert.InDelta(t, tt.expectedAverage, resp.AverageScore, 0.001)
		})
	}
}
