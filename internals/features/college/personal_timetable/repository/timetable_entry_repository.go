// file: internals/features/college/personal_timetable/repository/timetable_entry_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "college_backend/internals/features/college/personal_timetable/model"
)

var ErrNotFound = errors.New("timetable entry not found")

type PersonalTimetableStore interface {
	// ListPersonalEntries returns the user's rows ordered by day then creation.
	ListPersonalEntries(ctx context.Context, userID uuid.UUID) ([]m.TimetableEntryModel, error)
	GetByID(ctx context.Context, id uuid.UUID) (*m.TimetableEntryModel, error)
	Create(ctx context.Context, row *m.TimetableEntryModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormPersonalTimetableStore struct {
	db *gorm.DB
}

func NewPersonalTimetableStore(db *gorm.DB) PersonalTimetableStore {
	return &gormPersonalTimetableStore{db: db}
}

func (s *gormPersonalTimetableStore) ListPersonalEntries(ctx context.Context, userID uuid.UUID) ([]m.TimetableEntryModel, error) {
	var rows []m.TimetableEntryModel
	if err := s.db.WithContext(ctx).
		Where("timetable_entry_user_id = ?", userID).
		Order("timetable_entry_day_of_week ASC").
		Order("timetable_entry_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list timetable entries: %w", err)
	}
	return rows, nil
}

func (s *gormPersonalTimetableStore) GetByID(ctx context.Context, id uuid.UUID) (*m.TimetableEntryModel, error) {
	var row m.TimetableEntryModel
	err := s.db.WithContext(ctx).
		Where("timetable_entry_id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get timetable entry: %w", err)
	}
	return &row, nil
}

func (s *gormPersonalTimetableStore) Create(ctx context.Context, row *m.TimetableEntryModel) error {
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("create timetable entry: %w", err)
	}
	return nil
}

func (s *gormPersonalTimetableStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("timetable_entry_id = ?", id).
		Delete(&m.TimetableEntryModel{})
	if res.Error != nil {
		return fmt.Errorf("delete timetable entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
