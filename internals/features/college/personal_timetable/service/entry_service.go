// file: internals/features/college/personal_timetable/service/entry_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	m "college_backend/internals/features/college/personal_timetable/model"
	"college_backend/internals/features/college/personal_timetable/repository"
)

var ErrEntryNotFound = errors.New("entry not found")

type EntryService struct {
	store repository.PersonalTimetableStore
}

func NewEntryService(store repository.PersonalTimetableStore) *EntryService {
	return &EntryService{store: store}
}

func (s *EntryService) List(ctx context.Context, userID uuid.UUID) ([]m.TimetableEntryModel, error) {
	return s.store.ListPersonalEntries(ctx, userID)
}

// Create stamps the owner on row and inserts it.
func (s *EntryService) Create(ctx context.Context, userID uuid.UUID, row *m.TimetableEntryModel) error {
	row.TimetableEntryUserID = userID
	return s.store.Create(ctx, row)
}

// Delete removes one of the caller's entries. Someone else's entry reports
// ErrEntryNotFound, same as a missing one.
func (s *EntryService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	row, err := s.store.GetByID(ctx, entryID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEntryNotFound
	}
	if err != nil {
		return err
	}
	if row.TimetableEntryUserID != userID {
		return ErrEntryNotFound
	}

	if err := s.store.Delete(ctx, entryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEntryNotFound
		}
		return err
	}
	return nil
}
