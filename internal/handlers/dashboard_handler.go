package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	authMiddleware "github.com/learnhub/student-portal/internal/auth/middleware"
	"github.com/learnhub/student-portal/internal/models"
	"go.uber.org/zap"
)

// DashboardService is the interface that wraps methods for dashboard views
type DashboardService interface {
	// GetOverview retrieves the enrolled course list with summary counts
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	//
	// Returns the overview and an error if any.
	GetOverview(ctx context.Context, userID int) (*models.OverviewResponse, error)
	// GetDashboardStats retrieves the dashboard summary
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "date" is the day study minutes are summed for.
	//
	// Returns the stats and an error if any.
	GetDashboardStats(ctx context.Context, userID int, date string) (*models.DashboardStats, error)
	// GetActivityHours retrieves the hourly study-time series for one date
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "date" is the date in "YYYY-MM-DD" form; empty means today.
	//
	// Returns the series and an error if any.
	GetActivityHours(ctx context.Context, userID int, date string) (*models.ActivityResponse, error)
}

// AttendanceService is the interface that wraps attendance retrieval
type AttendanceService interface {
	// GetAttendance retrieves attendance records with aggregated stats
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "courseID" filters by course when non-empty.
	// "month" filters by month ("YYYY-MM") when non-empty.
	//
	// Returns the records with stats and an error if any.
	GetAttendance(ctx context.Context, userID int, courseID, month string) (*models.AttendanceResponse, error)
}

// PerformanceService is the interface that wraps performance retrieval
type PerformanceService interface {
	// GetPerformance retrieves the score series and subject breakdown
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "rangeStr" is one of weekly, monthly, yearly; empty means weekly.
	//
	// Returns the report and an error if any.
	GetPerformance(ctx context.Context, userID int, rangeStr string) (*models.PerformanceResponse, error)
}

// DashboardHandler handles HTTP requests for the student dashboard
type DashboardHandler struct {
	BaseHandler
	dashboardService   DashboardService
	attendanceService  AttendanceService
	performanceService PerformanceService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	dashboardService DashboardService,
	attendanceService AttendanceService,
	performanceService PerformanceService,
	logger *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:        BaseHandler{Logger: logger},
		dashboardService:   dashboardService,
		attendanceService:  attendanceService,
		performanceService: performanceService,
	}
}

// RegisterRoutes registers all dashboard handler routes
func (h *DashboardHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/student", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/overview", h.GetOverview)
		r.Get("/attendance", h.GetAttendance)
		r.Get("/performance", h.GetPerformance)
		r.Get("/activity-hours", h.GetActivityHours)
		r.Get("/dashboard/stats", h.GetDashboardStats)
	})
}

// GetOverview handles GET /student/overview
// @Summary Get enrolled courses overview
// @Description Get the enrolled course list with per-course completion percentages and summary counts
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]any "Courses with summary counts"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /student/overview [get]
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	overview, err := h.dashboardService.GetOverview(r.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to get overview", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondSuccess(w, http.StatusOK, map[string]any{
		"courses":           overview.Courses,
		"totalCourses":      overview.TotalCourses,
		"completedCourses":  overview.CompletedCourses,
		"inProgressCourses": overview.InProgressCourses,
	})
}

// GetAttendance handles GET /student/attendance
// @Summary Get attendance records
// @Description Get attendance records with aggregated stats, optionally filtered by course and month
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param courseId query string false "Course ID"
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {object} map[string]any "Records with stats"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /student/attendance [get]
func (h *DashboardHandler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	courseID := r.URL.Query().Get("courseId")
	month := r.URL.Query().Get("month")

	attendance, err := h.attendanceService.GetAttendance(r.Context(), userID, courseID, month)
	if err != nil {
		h.Logger.Error("failed to get attendance", zap.Error(err))
		errStatus := http.StatusInternalServerError
		if strings.HasPrefix(err.Error(), "invalid") {
			errStatus = http.StatusBadRequest
		}
		h.RespondError(w, errStatus, err.Error())
		return
	}

	h.RespondSuccess(w, http.StatusOK, map[string]any{
		"records": attendance.Records,
		"stats":   attendance.Stats,
	})
}

// GetPerformance handles GET /student/performance
// @Summary Get performance report
// @Description Get the score time series and subject breakdown for a range
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param range query string false "Range: weekly, monthly, or yearly (default: weekly)"
// @Success 200 {object} map[string]any "Series and subject breakdown"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /student/performance [get]
func (h *DashboardHandler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	performance, err := h.performanceService.GetPerformance(r.Context(), userID, r.URL.Query().Get("range"))
	if err != nil {
		h.Logger.Error("failed to get performance", zap.Error(err))
		errStatus := http.StatusInternalServerError
		if strings.HasPrefix(err.Error(), "invalid") {
			errStatus = http.StatusBadRequest
		}
		h.RespondError(w, errStatus, err.Error())
		return
	}

	h.RespondSuccess(w, http.StatusOK, map[string]any{
		"range":        performance.Range,
		"series":       performance.Series,
		"subjects":     performance.Subjects,
		"averageScore": performance.AverageScore,
	})
}

// GetActivityHours handles GET /student/activity-hours
// @Summary Get study activity hours
// @Description Get the hourly study-time series for a date
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param date query string false "Date (YYYY-MM-DD, default: today)"
// @Success 200 {object} map[string]any "Hourly study minutes"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /student/activity-hours [get]
func (h *DashboardHandler) GetActivityHours(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	activity, err := h.dashboardService.GetActivityHours(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		h.Logger.Error("failed to get activity hours", zap.Error(err))
		errStatus := http.StatusInternalServerError
		if strings.HasPrefix(err.Error(), "invalid") {
			errStatus = http.StatusBadRequest
		}
		h.RespondError(w, errStatus, err.Error())
		return
	}

	h.RespondSuccess(w, http.StatusOK, map[string]any{
		"date":         activity.Date,
		"slots":        activity.Slots,
		"totalMinutes": activity.TotalMinutes,
	})
}

// GetDashboardStats handles GET /student/dashboard/stats
// @Summary Get dashboard summary
// @Description Get enrolled course, lesson, attendance, and study-time summary counts
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]any "Dashboard summary"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /student/dashboard/stats [get]
func (h *DashboardHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	today := time.Now().Format("2006-01-02")
	stats, err := h.dashboardService.GetDashboardStats(r.Context(), userID, today)
	if err != nil {
		h.Logger.Error("failed to get dashboard stats", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondSuccess(w, http.StatusOK, map[string]any{
		"stats": stats,
	})
}
