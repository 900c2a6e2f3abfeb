package progress

import (
	"testing"

	"github.com/learnhub/student-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Status
		expectedError bool
	}{
		{name: "empty means all", input: "", expected: StatusAll},
		{name: "all", input: "all", expected: StatusAll},
		{name: "completed", input: "completed", expected: StatusCompleted},
		{name: "in-progress", input: "in-progress", expected: StatusInProgress},
		{name: "pending", input: "pending", expected: StatusPending},
		{name: "unknown", input: "locked", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ParseStatus(tt.input)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, status)
			}
		})
	}
}

func TestLessonStatus(t *testing.T) {
	tests := []struct {
		name     string
		lesson   models.Lesson
		expected Status
	}{
		{name: "completed", lesson: models.Lesson{IsCompleted: true}, expected: StatusCompleted},
		{name: "completed wins over current", lesson: models.Lesson{IsCompleted: true, IsCurrent: true}, expected: StatusCompleted},
		{name: "in progress", lesson: models.Lesson{IsCurrent: true}, expected: StatusInProgress},
		{name: "pending", lesson: models.Lesson{}, expected: StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LessonStatus(tt.lesson))
		})
	}
}

func TestGroupLessonsByDate(t *testing.T) {
	tests := []struct {
		name            string
		lessons         []models.Lesson
		expectedModules []string
	}{
		{
			name:            "empty input yields empty output",
			lessons:         nil,
			expectedModules: []string{},
		},
		{
			name: "modules in first-encounter order, not chronological",
			lessons: []models.Lesson{
				{ID: "l1", Date: "2025-01-03"},
				{ID: "l2", Date: "2025-01-01"},
				{ID: "l3", Date: "2025-01-03"},
				{ID: "l4", Date: "2025-01-02"},
			},
			expectedModules: []string{"2025-01-03", "2025-01-01", "2025-01-02"},
		},
		{
			name: "missing date groups under No Date",
			lessons: []models.Lesson{
				{ID: "l1", Date: ""},
				{ID: "l2", Date: "2025-01-01"},
				{ID: "l3", Date: ""},
			},
			expectedModules: []string{"No Date", "2025-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modules := GroupLessonsByDate(tt.lessons)

			keys := make([]string, 0, len(modules))
			total := 0
			for _, m := range modules {
				keys = append(keys, m.ID)
				assert.Equal(t, m.ID, m.Title)
				total += len(m.Lessons)
			}

			assert.Equal(t, tt.expectedModules, keys)
			// Every lesson appears in exactly one module
			assert.Equal(t, len(tt.lessons), total)
			for _, m := range modules {
				for _, l := range m.Lessons {
					key := l.Date
					if key == "" {
						key = NoDateKey
					}
					assert.Equal(t, m.ID, key)
				}
			}
		})
	}
}

func TestGroupLessonsByDate_SortWithinModule(t *testing.T) {
	lessons := []models.Lesson{
		{ID: "l1", Date: "2025-01-01", Time: "10:00"},
		{ID: "l2", Date: "2025-01-01", Time: "08:00"},
		{ID: "l3", Date: "2025-01-01", Time: ""},
		{ID: "l4", Date: "2025-01-01", Time: "08:00"},
	}

	modules := GroupLessonsByDate(lessons)

	require.Len(t, modules, 1)
	got := modules[0].Lessons
	require.Len(t, got, 4)

	// Non-decreasing by time under string comparison
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Time, got[i].Time)
	}

	// Empty time sorts first; equal times keep original relative order
	assert.Equal(t, "l3", got[0].ID)
	assert.Equal(t, "l2", got[1].ID)
	assert.Equal(t, "l4", got[2].ID)
	assert.Equal(t, "l1", got[3].ID)
}

func TestGroupLessonsByDate_DoesNotMutateInput(t *testing.T) {
	lessons := []models.Lesson{
		{ID: "l1", Date: "2025-01-01", Time: "10:00"},
		{ID: "l2", Date: "2025-01-01", Time: "08:00"},
	}

	GroupLessonsByDate(lessons)

	// Input order untouched; sorting happens on the module's own slice
	assert.Equal(t, "l1", lessons[0].ID)
	assert.Equal(t, "l2", lessons[1].ID)
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		lessons  []models.Lesson
		expected models.LessonStats
	}{
		{
			name:     "empty",
			lessons:  nil,
			expected: models.LessonStats{},
		},
		{
			name: "mixed states",
			lessons: []models.Lesson{
				{IsCompleted: true},
				{IsCompleted: true},
				{IsCurrent: true},
				{},
				{},
				{},
			},
			expected: models.LessonStats{Completed: 2, InProgress: 1, Pending: 3, Locked: 0},
		},
		{
			name: "current and completed counts as completed",
			lessons: []models.Lesson{
				{IsCompleted: true, IsCurrent: true},
			},
			expected: models.LessonStats{Completed: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeStats(tt.lessons)

			assert.Equal(t, tt.expected, stats)
			// States are exhaustive over the lesson set
			assert.Equal(t, len(tt.lessons), stats.Completed+stats.InProgress+stats.Pending)
		})
	}
}

func TestComputePercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		expected  int
	}{
		{name: "zero of zero", completed: 0, total: 0, expected: 0},
		{name: "nonzero of zero", completed: 5, total: 0, expected: 0},
		{name: "one third rounds down", completed: 1, total: 3, expected: 33},
		{name: "two thirds rounds up", completed: 2, total: 3, expected: 67},
		{name: "half", completed: 1, total: 2, expected: 50},
		{name: "complete", completed: 4, total: 4, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputePercentage(tt.completed, tt.total))
		})
	}
}

func TestSummarize(t *testing.T) {
	lessons := []models.Lesson{
		{IsCompleted: true},
		{IsCurrent: true},
		{},
	}

	summary := Summarize(lessons)

	assert.Equal(t, 1, summary.CompletedLessons)
	assert.Equal(t, 3, summary.TotalLessons)
	assert.Equal(t, 2, summary.RemainingLessons)
	assert.Equal(t, 33, summary.Percentage)
	assert.Equal(t, summary.TotalLessons, summary.CompletedLessons+summary.RemainingLessons)
}

func TestFilterModules(t *testing.T) {
	modules := []models.Module{
		{
			ID:    "2025-01-01",
			Title: "2025-01-01",
			Lessons: []models.Lesson{
				{ID: "l1", IsCompleted: true},
				{ID: "l2", IsCurrent: true},
			},
		},
		{
			ID:    "2025-01-02",
			Title: "2025-01-02",
			Lessons: []models.Lesson{
				{ID: "l3"},
			},
		},
	}

	tests := []struct {
		name          string
		status        Status
		expectedIDs   map[string][]string
		expectedCount int
	}{
		{
			name:          "all keeps everything",
			status:        StatusAll,
			expectedIDs:   map[string][]string{"2025-01-01": {"l1", "l2"}, "2025-01-02": {"l3"}},
			expectedCount: 2,
		},
		{
			name:          "completed prunes emptied modules",
			status:        StatusCompleted,
			expectedIDs:   map[string][]string{"2025-01-01": {"l1"}},
			expectedCount: 1,
		},
		{
			name:          "pending",
			status:        StatusPending,
			expectedIDs:   map[string][]string{"2025-01-02": {"l3"}},
			expectedCount: 1,
		},
		{
			name:          "in-progress",
			status:        StatusInProgress,
			expectedIDs:   map[string][]string{"2025-01-01": {"l2"}},
			expectedCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterModules(modules, tt.status)

			assert.Len(t, filtered, tt.expectedCount)
			for _, m := range filtered {
				want, ok := tt.expectedIDs[m.ID]
				require.True(t, ok, "unexpected module %s", m.ID)
				got := make([]string, 0, len(m.Lessons))
				for _, l := range m.Lessons {
					got = append(got, l.ID)
				}
				assert.Equal(t, want, got)
			}

			// Idempotent: filtering again changes nothing
			assert.Equal(t, filtered, FilterModules(filtered, tt.status))
		})
	}

	// Source modules untouched
	assert.Len(t, modules[0].Lessons, 2)
	assert.Len(t, modules[1].Lessons, 1)
}

func TestProgressEndToEnd(t *testing.T) {
	lessons := []models.Lesson{
		{ID: "l1", Date: "2025-01-01", Time: "09:00", IsCompleted: true},
		{ID: "l2", Date: "2025-01-01", Time: "08:00", IsCurrent: true},
		{ID: "l3", Date: "2025-01-02", Time: "10:00"},
	}

	modules := GroupLessonsByDate(lessons)

	require.Len(t, modules, 2)
	assert.Equal(t, "2025-01-01", modules[0].ID)
	assert.Equal(t, "2025-01-02", modules[1].ID)
	require.Len(t, modules[0].Lessons, 2)
	assert.Equal(t, "l2", modules[0].Lessons[0].ID)
	assert.Equal(t, "l1", modules[0].Lessons[1].ID)

	stats := ComputeStats(lessons)
	assert.Equal(t, models.LessonStats{Completed: 1, InProgress: 1, Pending: 1, Locked: 0}, stats)
}
