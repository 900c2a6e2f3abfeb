package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	authMiddleware "github.com/learnhub/student-portal/internal/auth/middleware"
	"github.com/learnhub/student-portal/internal/models"
	"github.com/learnhub/student-portal/internal/progress"
	"go.uber.org/zap"
)

// CourseProgressService is the interface that wraps course progress operations
type CourseProgressService interface {
	// GetCourseProgress retrieves a student's progress in a course
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "courseID" is the ID of the course.
	// "status" filters the returned modules by derived lesson state.
	//
	// Returns the progress response and an error if any.
	GetCourseProgress(ctx context.Context, userID int, courseID string, status progress.Status) (*models.CourseProgressResponse, error)
	// MarkLessonComplete records a lesson as completed and returns the
	// recomputed course progress
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the summary and an error if any.
	MarkLessonComplete(ctx context.Context, userID int, lessonID string) (*models.CourseProgressSummary, error)
}

// CourseProgressHandler handles HTTP requests for course progress
type CourseProgressHandler struct {
	BaseHandler
	service CourseProgressService
}

// NewCourseProgressHandler creates a new course progress handler
func NewCourseProgressHandler(service CourseProgressService, logger *zap.Logger) *CourseProgressHandler {
	return &CourseProgressHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all course progress handler routes
func (h *CourseProgressHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/student/courses", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/{id}/progress", h.GetCourseProgress)
	})
	r.Route("/student/lessons", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/{id}/complete", h.MarkLessonComplete)
	})
}

// GetCourseProgress handles GET /student/courses/{id}/progress
// @Summary Get course progress
// @Description Get aggregate completion metrics, derived state counts, and date-grouped lesson modules for a course
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID"
// @Param status query string false "Filter: all, completed, in-progress, or pending (default: all)"
// @Success 200 {object} map[string]any "Course progress"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /student/courses/{id}/progress [get]
func (h *CourseProgressHandler) GetCourseProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	courseID := chi.URLParam(r, "id")
	if courseID == "" {
		h.RespondError(w, http.StatusBadRequest, "course id is required")
		return
	}

	status, err := progress.ParseStatus(r.URL.Query().Get("status"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.service.GetCourseProgress(r.Context(), userID, courseID, status)
	if err != nil {
		h.Logger.Error("failed to get course progress", zap.Error(err))
		errStatus := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			errStatus = http.StatusNotFound
		}
		h.RespondError(w, errStatus, err.Error())
		return
	}

	h.RespondSuccess(w, http.StatusOK, map[string]any{
		"courseId": response.CourseID,
		"progress": response.Progress,
		"stats":    response.Stats,
		"modules":  response.Modules,
	})
}

// MarkLessonComplete handles POST /student/lessons/{id}/complete
// @Summary Mark a lesson complete
// @Description Record a lesson as completed for the authenticated student and return the recomputed course progress
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} map[string]any "Recomputed progress"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Lesson is locked"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /student/lessons/{id}/complete [post]
func (h *CourseProgressHandler) MarkLessonComplete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	lessonID := chi.URLParam(r, "id")
	if lessonID == "" {
		h.RespondError(w, http.StatusBadRequest, "lesson id is required")
		return
	}

	summary, err := h.service.MarkLessonComplete(r.Context(), userID, lessonID)
	if err != nil {
		h.Logger.Error("failed to mark lesson complete", zap.Error(err))
		errStatus := http.StatusInternalServerError
		switch {
		case strings.Contains(err.Error(), "not found"):
			errStatus = http.StatusNotFound
		case err.Error() == "lesson is locked":
			errStatus = http.StatusForbidden
		}
		h.RespondError(w, errStatus, err.Error())
		return
	}

	h.RespondSuccess(w, http.StatusOK, map[string]any{
		"progress": summary,
	})
}
