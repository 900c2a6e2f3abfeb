// Package progress implements client-visible progress aggregation: grouping
// lessons into date-keyed modules, derived completion statistics, and status
// filtering. All functions are pure and never mutate their input.
package progress

import (
	"fmt"
	"math"
	"sort"

	"github.com/learnhub/student-portal/internal/models"
)

// NoDateKey is the grouping key for lessons without a scheduled date
const NoDateKey = "No Date"

// Status is a derived lesson state used for filtering. A lesson is in
// exactly one of completed, in-progress, or pending.
type Status string

const (
	StatusAll        Status = "all"
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusPending    Status = "pending"
)

// ParseStatus parses a filter status string. An empty string means "all".
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAll, "":
		return StatusAll, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusPending:
		return StatusPending, nil
	}
	return "", fmt.Errorf("invalid status filter: %q", s)
}

// LessonStatus returns the derived state of a lesson
func LessonStatus(l models.Lesson) Status {
	if l.IsCompleted {
		return StatusCompleted
	}
	if l.IsCurrent {
		return StatusInProgress
	}
	return StatusPending
}

// GroupLessonsByDate partitions lessons into modules keyed by date. Modules
// are emitted in the order their date key is first encountered in the input,
// not chronologically. Within a module lessons are sorted ascending by time
// using plain string comparison; the sort is stable, so ties keep their
// original relative order. Lessons without a date land in the "No Date"
// module. Time values are zero-padded 24-hour "HH:MM" strings, for which
// string order equals chronological order.
func GroupLessonsByDate(lessons []models.Lesson) []models.Module {
	modules := make([]models.Module, 0, len(lessons))
	index := make(map[string]int)

	for _, lesson := range lessons {
		key := lesson.Date
		if key == "" {
			key = NoDateKey
		}

		i, ok := index[key]
		if !ok {
			i = len(modules)
			index[key] = i
			modules = append(modules, models.Module{ID: key, Title: key})
		}
		modules[i].Lessons = append(modules[i].Lessons, lesson)
	}

	for i := range modules {
		lessons := modules[i].Lessons
		sort.SliceStable(lessons, func(a, b int) bool {
			return lessons[a].Time < lessons[b].Time
		})
	}

	return modules
}

// ComputeStats counts lessons per derived state. The three states are
// mutually exclusive and exhaustive, so the counts always sum to the
// input length. Locked is constant 0 here; access locking is not derived
// from lesson completion data.
func ComputeStats(lessons []models.Lesson) models.LessonStats {
	var stats models.LessonStats
	for _, lesson := range lessons {
		switch LessonStatus(lesson) {
		case StatusCompleted:
			stats.Completed++
		case StatusInProgress:
			stats.InProgress++
		default:
			stats.Pending++
		}
	}
	return stats
}

// ComputePercentage returns the rounded completion percentage, or 0 when
// there are no lessons
func ComputePercentage(completedLessons, totalLessons int) int {
	if totalLessons <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completedLessons) / float64(totalLessons)))
}

// Summarize builds the per-course aggregate completion metrics
func Summarize(lessons []models.Lesson) models.CourseProgressSummary {
	completed := 0
	for _, lesson := range lessons {
		if lesson.IsCompleted {
			completed++
		}
	}

	total := len(lessons)
	return models.CourseProgressSummary{
		CompletedLessons: completed,
		TotalLessons:     total,
		RemainingLessons: total - completed,
		Percentage:       ComputePercentage(completed, total),
	}
}

// FilterModules returns modules containing only lessons matching the given
// status. Modules left empty by the filter are dropped. Input modules and
// their lesson slices are never mutated; the result holds new structures.
// Applying the same filter twice yields the same result as applying it once.
func FilterModules(modules []models.Module, status Status) []models.Module {
	filtered := make([]models.Module, 0, len(modules))

	for _, module := range modules {
		var lessons []models.Lesson
		for _, lesson := range module.Lessons {
			if status == StatusAll || LessonStatus(lesson) == status {
				lessons = append(lessons, lesson)
			}
		}
		if len(lessons) == 0 {
			continue
		}
		filtered = append(filtered, models.Module{
			ID:      module.ID,
			Title:   module.Title,
			Lessons: lessons,
		})
	}

	return filtered
}
