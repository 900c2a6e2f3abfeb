package models

// Course represents a course in the platform
type Course struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Subject string `json:"subject"`
}

// Enrollment represents a student's enrollment in a course
type Enrollment struct {
	CourseID        string `json:"courseId"`
	UserID          int    `json:"userId"`
	IsPaid          bool   `json:"isPaid"`
	CurrentLessonID string `json:"currentLessonId,omitempty"`
}

// CourseOverviewItem represents one enrolled course in the overview response
type CourseOverviewItem struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Subject          string `json:"subject"`
	CompletedLessons int    `json:"completedLessons"`
	TotalLessons     int    `json:"totalLessons"`
	Percentage       int    `json:"percentage"`
}

// OverviewResponse is the payload for the student overview endpoint
type OverviewResponse struct {
	Courses           []CourseOverviewItem `json:"courses"`
	TotalCourses      int                  `json:"totalCourses"`
	CompletedCourses  int                  `json:"completedCourses"`
	InProgressCourses int                  `json:"inProgressCourses"`
}
