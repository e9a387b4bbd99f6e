// Package store persists admin users, imported draws and generated batches
// with gorm.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ArowuTest/luckygen/internal/generator"
	"github.com/ArowuTest/luckygen/internal/history"
	"github.com/ArowuTest/luckygen/internal/models"
)

var ErrNotFound = errors.New("store: record not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// FindUserByUsername returns ErrNotFound for unknown usernames.
func (s *Store) FindUserByUsername(ctx context.Context, username string) (models.AdminUser, error) {
	var user models.AdminUser
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return user, notFound(err)
}

func (s *Store) CreateUser(ctx context.Context, user *models.AdminUser) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *Store) ListUsers(ctx context.Context) ([]models.AdminUser, error) {
	var users []models.AdminUser
	err := s.db.WithContext(ctx).Order("username asc").Find(&users).Error
	return users, err
}

// AppendDraws stores draws after the existing ones, keeping their order.
func (s *Store) AppendDraws(ctx context.Context, draws [][]int, importedBy *uuid.UUID) (int, error) {
	if len(draws) == 0 {
		return 0, nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int
		if err := tx.Model(&models.HistoricalDraw{}).
			Select("COALESCE(MAX(sequence), 0)").
			Scan(&last).Error; err != nil {
			return err
		}
		rows := make([]models.HistoricalDraw, len(draws))
		for i, d := range draws {
			rows[i] = models.HistoricalDraw{
				ID:         uuid.New(),
				Sequence:   last + i + 1,
				Numbers:    models.Int64s(d),
				ImportedBy: importedBy,
			}
		}
		return tx.CreateInBatches(rows, 500).Error
	})
	if err != nil {
		return 0, fmt.Errorf("store: append draws: %w", err)
	}
	return len(draws), nil
}

// ListDraws returns the most recent draws first.
func (s *Store) ListDraws(ctx context.Context, limit int) ([]models.HistoricalDraw, error) {
	var draws []models.HistoricalDraw
	q := s.db.WithContext(ctx).Order("sequence desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&draws).Error
	return draws, err
}

// Name and Draws make the store a history.Source.
func (s *Store) Name() string { return "db" }

func (s *Store) Draws(ctx context.Context) ([][]int, int, error) {
	var rows []models.HistoricalDraw
	if err := s.db.WithContext(ctx).Order("sequence asc").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("store: load draws: %w", err)
	}
	draws := make([][]int, 0, len(rows))
	skipped := 0
	for _, r := range rows {
		nums := models.Ints(r.Numbers)
		if history.ValidateDraw(nums) != nil {
			skipped++
			continue
		}
		draws = append(draws, nums)
	}
	return draws, skipped, nil
}

// NewBatchRecord converts a generated batch for storage.
func NewBatchRecord(batch generator.Batch, historyStatus history.Status) models.GeneratedBatch {
	rec := models.GeneratedBatch{
		ID:            uuid.New(),
		Requested:     batch.Requested,
		Unique:        batch.Unique,
		Partial:       batch.Partial(),
		HistoryStatus: string(historyStatus),
		Warnings:      append([]string(nil), batch.Warnings...),
	}
	for i, g := range batch.Games {
		rec.Games = append(rec.Games, models.GeneratedGame{
			ID:         uuid.New(),
			BatchID:    rec.ID,
			Position:   i + 1,
			Numbers:    models.Int64s(g.Numbers),
			Provenance: string(g.Provenance),
			Attempts:   g.Attempts,
			Sum:        g.Stats.Sum,
			Evens:      g.Stats.Evens,
		})
	}
	return rec
}

// SaveBatch stores the batch and its games in one transaction.
func (s *Store) SaveBatch(ctx context.Context, batch *models.GeneratedBatch) error {
	return s.db.WithContext(ctx).Create(batch).Error
}

func (s *Store) ListBatches(ctx context.Context, limit int) ([]models.GeneratedBatch, error) {
	var batches []models.GeneratedBatch
	q := s.db.WithContext(ctx).
		Preload("Games", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&batches).Error
	return batches, err
}

func (s *Store) GetBatch(ctx context.Context, id uuid.UUID) (models.GeneratedBatch, error) {
	var batch models.GeneratedBatch
	err := s.db.WithContext(ctx).
		Preload("Games", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		First(&batch, "id = ?", id).Error
	return batch, notFound(err)
}
