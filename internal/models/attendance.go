package models

// AttendanceStatus represents the recorded attendance state for one class day
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
)

// AttendanceRecord represents a single attendance entry
type AttendanceRecord struct {
	ID       int              `json:"id"`
	CourseID string           `json:"courseId"`
	Date     string           `json:"date"`
	Status   AttendanceStatus `json:"status"`
}

// AttendanceStats holds aggregated attendance counts and rate
type AttendanceStats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Total   int `json:"total"`
	Rate    int `json:"rate"`
}

// AttendanceResponse is the payload for the attendance endpoint
type AttendanceResponse struct {
	Records []AttendanceRecord `json:"records"`
	Stats   AttendanceStats    `json:"stats"`
}
