package services

import (
	"context"
	"fmt"
	"time"

	"github.com/learnhub/student-portal/internal/models"
	"github.com/learnhub/student-portal/internal/progress"
)

// CourseRepository defines methods for course data access
type CourseRepository interface {
	// GetEnrolledOverview retrieves all courses a student is enrolled in with
	// lesson totals and completion counts
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	//
	// Returns the course overview items and an error if any.
	GetEnrolledOverview(ctx context.Context, userID int) ([]models.CourseOverviewItem, error)
}

// AttendanceCountsRepository defines the attendance aggregate used by the dashboard
type AttendanceCountsRepository interface {
	// GetStatusCounts retrieves all-time attendance counts per status
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	//
	// Returns the counts and an error if any.
	GetStatusCounts(ctx context.Context, userID int) (models.AttendanceStats, error)
}

// ActivityRepository defines methods for study activity data access
type ActivityRepository interface {
	// GetDaily retrieves per-hour study minutes for one date
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "date" is the date in "YYYY-MM-DD" form.
	//
	// Returns the slots and an error if any.
	GetDaily(ctx context.Context, userID int, date string) ([]models.ActivitySlot, error)
	// TotalForDate retrieves total study minutes for one date
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "date" is the date in "YYYY-MM-DD" form.
	//
	// Returns the total minutes and an error if any.
	TotalForDate(ctx context.Context, userID int, date string) (int, error)
}

type dashboardService struct {
	courseRepo     CourseRepository
	attendanceRepo AttendanceCountsRepository
	activityRepo   ActivityRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	courseRepo CourseRepository,
	attendanceRepo AttendanceCountsRepository,
	activityRepo ActivityRepository,
) *dashboardService {
	return &dashboardService{
		courseRepo:     courseRepo,
		attendanceRepo: attendanceRepo,
		activityRepo:   activityRepo,
	}
}

// GetOverview retrieves the enrolled course list with per-course percentages
// and summary counts
func (s *dashboardService) GetOverview(ctx context.Context, userID int) (*models.OverviewResponse, error) {
	courses, err := s.courseRepo.GetEnrolledOverview(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrolled courses: %w", err)
	}

	response := &models.OverviewResponse{
		Courses:      courses,
		TotalCourses: len(courses),
	}

	for i := range courses {
		courses[i].Percentage = progress.ComputePercentage(courses[i].CompletedLessons, courses[i].TotalLessons)
		if courses[i].TotalLessons > 0 && courses[i].CompletedLessons == courses[i].TotalLessons {
			response.CompletedCourses++
		} else if courses[i].CompletedLessons > 0 {
			response.InProgressCourses++
		}
	}

	return response, nil
}

// GetDashboardStats retrieves the dashboard summary for a student. "date" is
// the day study minutes are summed for, usually today.
func (s *dashboardService) GetDashboardStats(ctx context.Context, userID int, date string) (*models.DashboardStats, error) {
	courses, err := s.courseRepo.GetEnrolledOverview(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrolled courses: %w", err)
	}

	stats := &models.DashboardStats{
		EnrolledCourses: len(courses),
	}
	for _, course := range courses {
		stats.CompletedLessons += course.CompletedLessons
		stats.PendingLessons += course.TotalLessons - course.CompletedLessons
	}

	attendance, err := s.attendanceRepo.GetStatusCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance counts: %w", err)
	}
	stats.AttendanceRate = progress.ComputePercentage(attendance.Present, attendance.Total)

	minutes, err := s.activityRepo.TotalForDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get study minutes: %w", err)
	}
	stats.StudyMinutes = minutes

	return stats, nil
}

// GetActivityHours retrieves the hourly study-time series for one date.
// An empty date defaults to today.
func (s *dashboardService) GetActivityHours(ctx context.Context, userID int, date string) (*models.ActivityResponse, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date: %q", date)
	}

	slots, err := s.activityRepo.GetDaily(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity hours: %w", err)
	}

	response := &models.ActivityResponse{
		Date:  date,
		Slots: slots,
	}
	for _, slot := range slots {
		response.TotalMinutes += slot.Minutes
	}

	return response, nil
}
