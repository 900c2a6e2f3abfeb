package services

import (
	"context"
	"fmt"
	"time"

	"github.com/learnhub/student-portal/internal/models"
	"github.com/learnhub/student-portal/internal/progress"
)

// AttendanceRepository defines methods for attendance data access
type AttendanceRepository interface {
	// GetRecords retrieves attendance records, optionally filtered by course
	// and month
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "courseID" filters by course when non-empty.
	// "month" filters by month ("YYYY-MM") when non-empty.
	//
	// Returns the records and an error if any.
	GetRecords(ctx context.Context, userID int, courseID, month string) ([]models.AttendanceRecord, error)
}

type attendanceService struct {
	attendanceRepo AttendanceRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendanceRepo AttendanceRepository) *attendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
	}
}

// GetAttendance retrieves attendance records with aggregated stats. The rate
// is the rounded percentage of days marked present.
func (s *attendanceService) GetAttendance(ctx context.Context, userID int, courseID, month string) (*models.AttendanceResponse, error) {
	if month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			return nil, fmt.Errorf("invalid month: %q", month)
		}
	}

	records, err := s.attendanceRepo.GetRecords(ctx, userID, courseID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance records: %w", err)
	}

	var stats models.AttendanceStats
	for _, record := range records {
		switch record.Status {
		case models.AttendanceStatusPresent:
			stats.Present++
		case models.AttendanceStatusAbsent:
			stats.Absent++
		case models.AttendanceStatusLate:
			stats.Late++
		}
	}
	stats.Total = len(records)
	stats.Rate = progress.ComputePercentage(stats.Present, stats.Total)

	return &models.AttendanceResponse{
		Records: records,
		Stats:   stats,
	}, nil
}
