package services

import (
	"context"
	"fmt"

	"github.com/learnhub/student-portal/internal/models"
	"github.com/learnhub/student-portal/internal/progress"
)

// LessonRepository defines methods for lesson data access
type LessonRepository interface {
	// GetByCourseID retrieves all lessons of a course with completion and
	// current-lesson flags for the given student.
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "userID" is the ID of the student.
	//
	// Returns the lessons and an error if any.
	GetByCourseID(ctx context.Context, courseID string, userID int) ([]models.Lesson, error)
	// GetCourseID retrieves the ID of the course a lesson belongs to
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the course ID and an error if any.
	GetCourseID(ctx context.Context, lessonID string) (string, error)
}

// EnrollmentRepository defines methods for enrollment data access
type EnrollmentRepository interface {
	// Get retrieves a student's enrollment in a course
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "courseID" is the ID of the course.
	//
	// Returns the enrollment and an error if any.
	Get(ctx context.Context, userID int, courseID string) (*models.Enrollment, error)
}

// CompletionRepository defines methods for lesson completion data access
type CompletionRepository interface {
	// Exists checks if a completion record exists for a lesson
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "lessonID" is the ID of the lesson.
	//
	// Returns a boolean and an error if any.
	Exists(ctx context.Context, userID int, lessonID string) (bool, error)
	// Create creates a new completion record
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "courseID" is the ID of the course.
	// "lessonID" is the ID of the lesson.
	//
	// Returns an error if any.
	Create(ctx context.Context, userID int, courseID, lessonID string) error
}

type courseProgressService struct {
	lessonRepo     LessonRepository
	enrollmentRepo EnrollmentRepository
	completionRepo CompletionRepository
}

// NewCourseProgressService creates a new course progress service
func NewCourseProgressService(
	lessonRepo LessonRepository,
	enrollmentRepo EnrollmentRepository,
	completionRepo CompletionRepository,
) *courseProgressService {
	return &courseProgressService{
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
		completionRepo: completionRepo,
	}
}

// GetCourseProgress retrieves a student's progress in a course: aggregate
// completion metrics, derived state counts, and lessons grouped into
// date-keyed modules filtered by status
func (s *courseProgressService) GetCourseProgress(ctx context.Context, userID int, courseID string, status progress.Status) (*models.CourseProgressResponse, error) {
	enrollment, err := s.enrollmentRepo.Get(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	lessons, err := s.lessonRepo.GetByCourseID(ctx, courseID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}

	applyAccessLocks(lessons, enrollment.IsPaid)

	modules := progress.FilterModules(progress.GroupLessonsByDate(lessons), status)

	return &models.CourseProgressResponse{
		CourseID: courseID,
		Progress: progress.Summarize(lessons),
		Stats:    progress.ComputeStats(lessons),
		Modules:  modules,
	}, nil
}

// MarkLessonComplete records a lesson as completed for a student and returns
// the recomputed course progress. Completing an already-completed lesson is a
// no-op rather than an error.
func (s *courseProgressService) MarkLessonComplete(ctx context.Context, userID int, lessonID string) (*models.CourseProgressSummary, error) {
	courseID, err := s.lessonRepo.GetCourseID(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	enrollment, err := s.enrollmentRepo.Get(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	lessons, err := s.lessonRepo.GetByCourseID(ctx, courseID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}

	applyAccessLocks(lessons, enrollment.IsPaid)
	for _, lesson := range lessons {
		if lesson.ID == lessonID && lesson.IsAccessLocked {
			return nil, fmt.Errorf("lesson is locked")
		}
	}

	exists, err := s.completionRepo.Exists(ctx, userID, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to check completion existence: %w", err)
	}

	if !exists {
		if err := s.completionRepo.Create(ctx, userID, courseID, lessonID); err != nil {
			return nil, fmt.Errorf("failed to create completion record: %w", err)
		}
	}

	lessons, err = s.lessonRepo.GetByCourseID(ctx, courseID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}

	summary := progress.Summarize(lessons)
	return &summary, nil
}

// applyAccessLocks marks all but the first lesson as access-locked for unpaid
// enrollments. The lock is a presentation flag and never feeds the derived
// completion stats.
func applyAccessLocks(lessons []models.Lesson, isPaid bool) {
	if isPaid {
		return
	}
	for i := range lessons {
		if i > 0 {
			lessons[i].IsAccessLocked = true
		}
	}
}
