package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ArowuTest/luckygen/internal/generator"
	"github.com/ArowuTest/luckygen/internal/history"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return New(db), mock
}

func TestDrawsSkipsInvalidRows(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "sequence", "numbers"}).
		AddRow(uuid.NewString(), 1, "{4,8,15,16,23,42}").
		AddRow(uuid.NewString(), 2, "{1,2,3}").
		AddRow(uuid.NewString(), 3, "{5,10,15,20,25,30}")
	mock.ExpectQuery(`SELECT \* FROM "historical_draws" ORDER BY sequence asc`).WillReturnRows(rows)

	draws, skipped, err := s.Draws(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, [][]int{{4, 8, 15, 16, 23, 42}, {5, 10, 15, 20, 25, 30}}, draws)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsernameNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "admin_users" WHERE username = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	_, err := s.FindUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreIsHistorySource(t *testing.T) {
	var _ history.Source = (*Store)(nil)
	assert.Equal(t, "db", New(nil).Name())
}

func TestNewBatchRecord(t *testing.T) {
	batch := generator.Batch{
		Requested: 3,
		Unique:    true,
		Warnings:  []string{"only 4 numbers left after 2 games; batch stopped early"},
		Games: []generator.Result{
			{
				Numbers:    []int{4, 13, 28, 37, 40, 49},
				Provenance: generator.ProvenanceStatistical,
				Attempts:   3,
				Stats:      generator.ComputeStats([]int{4, 13, 28, 37, 40, 49}),
			},
			{
				Numbers:    []int{1, 2, 3, 5, 6, 7},
				Provenance: generator.ProvenanceFallback,
				Attempts:   3000,
				Stats:      generator.ComputeStats([]int{1, 2, 3, 5, 6, 7}),
			},
		},
	}

	rec := NewBatchRecord(batch, history.StatusLoaded)
	assert.True(t, rec.Partial)
	assert.Equal(t, "loaded", rec.HistoryStatus)
	require.Len(t, rec.Games, 2)
	assert.Equal(t, rec.ID, rec.Games[1].BatchID)
	assert.Equal(t, 2, rec.Games[1].Position)
	assert.Equal(t, "fallback", rec.Games[1].Provenance)
	assert.Equal(t, 171, rec.Games[0].Sum)
	assert.EqualValues(t, []int64{4, 13, 28, 37, 40, 49}, rec.Games[0].Numbers)
}
