package models

// PerformanceRange selects the time window for performance series
type PerformanceRange string

const (
	PerformanceRangeWeekly  PerformanceRange = "weekly"
	PerformanceRangeMonthly PerformanceRange = "monthly"
	PerformanceRangeYearly  PerformanceRange = "yearly"
)

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

// PerformanceResponse is the payload for the performance endpoint
type PerformanceResponse struct {
	Range        PerformanceRange   `json:"range"`
	Series       []PerformancePoint `json:"series"`
	Subjects     []SubjectScore     `json:"subjects"`
	AverageScore float64            `json:"averageScore"`
}
