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

func setupActivityTestRepository(t *testing.T) (*activityRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewActivityRepository(db)
	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestActivityRepository_GetDaily(t *testing.T) {
	columns := []string{"hour_of_day", "minutes"}

	tests := []struct {
		name          string
		setupMock     func(mock sqlmock.Sqlmock)
		expectedError string
		expected      []models.ActivitySlot
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(9, 40).
					AddRow(14, 25)
				mock.ExpectQuery(`SELECT hour_of_day, minutes.*FROM activity_logs.*ORDER BY hour_of_day`).
					WithArgs(1, "2025-06-02").
					WillReturnRows(rows)
			},
			expected: []models.ActivitySlot{
				{Hour: 9, Minutes: 40},
				{Hour: 14, Minutes: 25},
			},
		},
		{
			name: "no activity",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT hour_of_day, minutes.*`).
					WithArgs(1, "2025-06-02").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			expected: nil,
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT hour_of_day, minutes.*`).
					WithArgs(1, "2025-06-02").
					WillReturnError(errors.New("database error"))
			},
			expectedError: "failed to query activity logs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupActivityTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			slots, err := repo.GetDaily(context.Background(), 1, "2025-06-02")

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, slots)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestActivityRepository_TotalForDate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupActivityTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(minutes\), 0\).*FROM activity_logs`).
			WithArgs(1, "2025-06-02").
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(65))

		total, err := repo.TotalForDate(context.Background(), 1, "2025-06-02")

		require.NoError(t, err)
		assert.Equal(t, 65, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock, cleanup := setupActivityTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(minutes\), 0\).*FROM activity_logs`).
			WithArgs(1, "2025-06-02").
			WillReturnError(errors.New("database error"))

		total, err := repo.TotalForDate(context.Background(), 1, "2025-06-02")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to sum activity minutes")
		assert.Zero(t, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
