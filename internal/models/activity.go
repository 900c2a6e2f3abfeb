package models

// ActivitySlot is the study time logged for one hour of the day
type ActivitySlot struct {
	Hour    int `json:"hour"`
	Minutes int `json:"minutes"`
}

// ActivityResponse is the payload for the activity hours endpoint
type ActivityResponse struct {
	Date         string         `json:"date"`
	Slots        []ActivitySlot `json:"slots"`
	TotalMinutes int            `json:"totalMinutes"`
}

// DashboardStats is the payload for the dashboard summary endpoint
type DashboardStats struct {
	EnrolledCourses  int `json:"enrolledCourses"`
	CompletedLessons int `json:"completedLessons"`
	PendingLessons   int `json:"pendingLessons"`
	AttendanceRate   int `json:"attendanceRate"`
	StudyMinutes     int `json:"studyMinutes"`
}
