package models

// LessonType represents the content type of a lesson
type LessonType string

const (
	LessonTypeVideo   LessonType = "video"
	LessonTypeReading LessonType = "reading"
	LessonTypeCoding  LessonType = "coding"
	LessonTypeAudio   LessonType = "audio"
	LessonTypeOther   LessonType = "other"
)

// Lesson represents a unit of course content with completion and scheduling
// metadata for one student. Date is empty when the lesson has no scheduled
// date; Time is a zero-padded 24-hour "HH:MM" string.
type Lesson struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	Duration        int        `json:"duration"`
	IsCompleted     bool       `json:"isCompleted"`
	IsCurrent       bool       `json:"isCurrent"`
	Type            LessonType `json:"type"`
	IsAccessLocked  bool       `json:"isAccessLocked"`
}

// Module is a date-keyed grouping of lessons, computed on demand and never
// stored. ID and Title both carry the grouping date string.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// LessonStats holds counts of lessons per derived completion state.
// Locked is always 0 at this layer; access locking is a presentation
// concept carried on Lesson.IsAccessLocked instead.
type LessonStats struct {
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`
	Locked     int `json:"locked"`
}

// CourseProgressSummary holds per-course aggregate completion metrics
type CourseProgressSummary struct {
	CompletedLessons int `json:"completedLessons"`
	TotalLessons     int `json:"totalLessons"`
	RemainingLessons int `json:"remainingLessons"`
	Percentage       int `json:"percentage"`
}

// CourseProgressResponse is the payload for the course progress endpoint
type CourseProgressResponse struct {
	CourseID string                `json:"courseId"`
	Progress CourseProgressSummary `json:"progress"`
	Stats    LessonStats           `json:"stats"`
	Modules  []Module              `json:"modules"`
}
