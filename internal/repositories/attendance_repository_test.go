package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/learnhub/student-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAttendanceTestRepository(t *testing.T) (*attendanceRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewAttendanceRepository(db)
	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestAttendanceRepository_GetRecords(t *testing.T) {
	columns := []string{"id", "course_id", "class_date", "status"}

	tests := []struct {
		name          string
		courseID      string
		month         string
		setupMock     func(mock sqlmock.Sqlmock)
		expectedError string
		expected      []models.AttendanceRecord
	}{
		{
			name: "success without filters",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, "c1", "2025-06-02", "present").
					AddRow(2, "c1", "2025-06-03", "late")
				mock.ExpectQuery(`SELECT.*FROM attendance_records.*WHERE user_id = \?`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expected: []models.AttendanceRecord{
				{ID: 1, CourseID: "c1", Date: "2025-06-02", Status: models.AttendanceStatusPresent},
				{ID: 2, CourseID: "c1", Date: "2025-06-03", Status: models.AttendanceStatusLate},
			},
		},
		{
			name:     "course and month filters add conditions",
			courseID: "c1",
			month:    "2025-06",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, "c1", "2025-06-02", "present")
				mock.ExpectQuery(`SELECT.*FROM attendance_records.*AND course_id = \?.*AND DATE_FORMAT\(class_date, '%Y-%m'\) = \?`).
					WithArgs(1, "c1", "2025-06").
					WillReturnRows(rows)
			},
			expected: []models.AttendanceRecord{
				{ID: 1, CourseID: "c1", Date: "2025-06-02", Status: models.AttendanceStatusPresent},
			},
		},
		{
			name: "no records",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*FROM attendance_records.*`).
					WithArgs(1).
					WillReturnRows(sqlmock.NewRows(columns))
			},
			expected: nil,
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*FROM attendance_records.*`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: "failed to query attendance records",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupAttendanceTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			records, err := repo.GetRecords(context.Background(), 1, tt.courseID, tt.month)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, records)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAttendanceRepository_GetStatusCounts(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(mock sqlmock.Sqlmock)
		expectedError string
		expected      models.AttendanceStats
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"present", "absent", "late"}).
					AddRow(18, 1, 1)
				mock.ExpectQuery(`SELECT.*SUM\(CASE WHEN status = 'present'.*FROM attendance_records`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expected: models.AttendanceStats{Present: 18, Absent: 1, Late: 1, Total: 20},
		},
		{
			name: "no records at all",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"present", "absent", "late"}).
					AddRow(0, 0, 0)
				mock.ExpectQuery(`SELECT.*SUM\(CASE WHEN status = 'present'.*FROM attendance_records`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expected: models.AttendanceStats{},
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*SUM\(CASE WHEN status = 'present'.*FROM attendance_records`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: "failed to count attendance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupAttendanceTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			stats, err := repo.GetStatusCounts(context.Background(), 1)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, stats)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
