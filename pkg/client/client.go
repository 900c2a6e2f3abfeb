// Package client provides a typed REST client for the student portal API.
// The client is built from an explicit Config rather than ambient storage,
// attaches the bearer token only when one is configured, and never retries,
// caches, or queues requests.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBasePath is used when Config.BaseURL is empty
const DefaultBasePath = "/api/v1"

const defaultFailureMessage = "request failed"

// Config holds client settings
type Config struct {
	// BaseURL is the API root, e.g. "https://portal.example.com/api/v1"
	BaseURL string
	// Token is the bearer token; the Authorization header is omitted when empty
	Token string
	// Timeout bounds each request; zero means no client-side timeout
	Timeout time.Duration
}

// Client is a student portal API client
type Client struct {
	rc *resty.Client
}

// New creates a new client from the given config
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBasePath
	}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		rc.SetAuthToken(cfg.Token)
	}
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	return &Client{rc: rc}
}

// APIError is an application-level failure: a non-2xx response or a
// `success: false` body. Error() returns the server-provided message
// verbatim so callers can surface it to the user.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Overview is the enrolled course list with summary counts
type Overview struct {
	Courses           []CourseOverviewItem `json:"courses"`
	TotalCourses      int                  `json:"totalCourses"`
	CompletedCourses  int                  `json:"completedCourses"`
	InProgressCourses int                  `json:"inProgressCourses"`
}

// CourseOverviewItem is one enrolled course in the overview
type CourseOverviewItem struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Subject          string `json:"subject"`
	CompletedLessons int    `json:"completedLessons"`
	TotalLessons     int    `json:"totalLessons"`
	Percentage       int    `json:"percentage"`
}

// Attendance is the attendance records with aggregated stats
type Attendance struct {
	Records []AttendanceRecord `json:"records"`
	Stats   AttendanceStats    `json:"stats"`
}

// AttendanceRecord is a single attendance entry
type AttendanceRecord struct {
	ID       int    `json:"id"`
	CourseID string `json:"courseId"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// AttendanceStats holds aggregated attendance counts and rate
type AttendanceStats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Total   int `json:"total"`
	Rate    int `json:"rate"`
}

// Performance is the score time series with subject breakdown
type Performance struct {
	Range        string             `json:"range"`
	Series       []PerformancePoint `json:"series"`
	Subjects     []SubjectScore     `json:"subjects"`
	AverageScore float64            `json:"averageScore"`
}

// PerformancePoint is a single entry in the score time series
type PerformancePoint struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SubjectScore is the average score for one subject
type SubjectScore struct {
	Subject string  `json:"subject"`
	Score   float64 `json:"score"`
}

// Activity is the hourly study-time series for one date
type Activity struct {
	Date         string         `json:"date"`
	Slots        []ActivitySlot `json:"slots"`
	TotalMinutes int            `json:"totalMinutes"`
}

// ActivitySlot is the study time logged for one hour of the day
type ActivitySlot struct {
	Hour    int `json:"hour"`
	Minutes int `json:"minutes"`
}

// DashboardStats is the dashboard summary
type DashboardStats struct {
	EnrolledCourses  int `json:"enrolledCourses"`
	CompletedLessons int `json:"completedLessons"`
	PendingLessons   int `json:"pendingLessons"`
	AttendanceRate   int `json:"attendanceRate"`
	StudyMinutes     int `json:"studyMinutes"`
}

// ProgressSummary is the per-course aggregate completion metrics
type ProgressSummary struct {
	CompletedLessons int `json:"completedLessons"`
	TotalLessons     int `json:"totalLessons"`
	RemainingLessons int `json:"remainingLessons"`
	Percentage       int `json:"percentage"`
}

// LessonStats holds counts of lessons per derived completion state
type LessonStats struct {
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`
	Locked     int `json:"locked"`
}

// Lesson is a unit of course content with completion metadata
type Lesson struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Duration       int    `json:"duration"`
	IsCompleted    bool   `json:"isCompleted"`
	IsCurrent      bool   `json:"isCurrent"`
	Type           string `json:"type"`
	IsAccessLocked bool   `json:"isAccessLocked"`
}

// Module is a date-keyed grouping of lessons
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// CourseProgress is a student's progress in one course
type CourseProgress struct {
	CourseID string          `json:"courseId"`
	Progress ProgressSummary `json:"progress"`
	Stats    LessonStats     `json:"stats"`
	Modules  []Module        `json:"modules"`
}

// GetOverview retrieves the enrolled course list with summary counts
func (c *Client) GetOverview(ctx context.Context) (*Overview, error) {
	var out Overview
	if err := c.get(ctx, "/student/overview", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAttendance retrieves attendance records with aggregated stats. Empty
// courseID and month mean no filtering.
func (c *Client) GetAttendance(ctx context.Context, courseID, month string) (*Attendance, error) {
	query := map[string]string{}
	if courseID != "" {
		query["courseId"] = courseID
	}
	if month != "" {
		query["month"] = month
	}

	var out Attendance
	if err := c.get(ctx, "/student/attendance", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPerformance retrieves the score series for a range (weekly, monthly, or
// yearly; empty means weekly)
func (c *Client) GetPerformance(ctx context.Context, rng string) (*Performance, error) {
	query := map[string]string{}
	if rng != "" {
		query["range"] = rng
	}

	var out Performance
	if err := c.get(ctx, "/student/performance", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetActivityHours retrieves the hourly study-time series for a date
// ("YYYY-MM-DD"; empty means today)
func (c *Client) GetActivityHours(ctx context.Context, date string) (*Activity, error) {
	query := map[string]string{}
	if date != "" {
		query["date"] = date
	}

	var out Activity
	if err := c.get(ctx, "/student/activity-hours", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDashboardStats retrieves the dashboard summary
func (c *Client) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var out struct {
		Stats DashboardStats `json:"stats"`
	}
	if err := c.get(ctx, "/student/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}

// GetCourseProgress retrieves a student's progress in a course, with modules
// optionally filtered by status (all, completed, in-progress, pending)
func (c *Client) GetCourseProgress(ctx context.Context, courseID, status string) (*CourseProgress, error) {
	query := map[string]string{}
	if status != "" {
		query["status"] = status
	}

	var out CourseProgress
	if err := c.get(ctx, fmt.Sprintf("/student/courses/%s/progress", courseID), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkLessonComplete records a lesson as completed and returns the recomputed
// course progress
func (c *Client) MarkLessonComplete(ctx context.Context, lessonID string) (*ProgressSummary, error) {
	var out struct {
		Progress ProgressSummary `json:"progress"`
	}
	if err := c.post(ctx, fmt.Sprintf("/student/lessons/%s/complete", lessonID), &out); err != nil {
		return nil, err
	}
	return &out.Progress, nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	req := c.rc.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		// Transport failure propagates verbatim
		return err
	}
	return decode(resp, out)
}

func (c *Client) post(ctx context.Context, path string, out any) error {
	resp, err := c.rc.R().SetContext(ctx).Post(path)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

// decode maps a response to the caller's type. Non-2xx responses and
// `success: false` bodies become an APIError carrying the server message,
// falling back to a generic one when the body has none.
func decode(resp *resty.Response, out any) error {
	var env struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	body := resp.Body()

	if err := json.Unmarshal(body, &env); err != nil {
		if resp.IsError() {
			return &APIError{StatusCode: resp.StatusCode(), Message: defaultFailureMessage}
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.IsError() || (env.Success != nil && !*env.Success) {
		message := env.Message
		if message == "" {
			message = defaultFailureMessage
		}
		return &APIError{StatusCode: resp.StatusCode(), Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
