package service

import (
	"context"

	"github.com/google/uuid"

	m "college_backend/internals/features/college/personal_timetable/model"
	"college_backend/internals/features/college/personal_timetable/repository"
)

// mockEntryStore is an in-memory PersonalTimetableStore.
type mockEntryStore struct {
	rows    []m.TimetableEntryModel
	listErr error
}

func (s *mockEntryStore) ListPersonalEntries(_ context.Context, userID uuid.UUID) ([]m.TimetableEntryModel, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]m.TimetableEntryModel, 0)
	for _, r := range s.rows {
		if r.TimetableEntryUserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *mockEntryStore) GetByID(_ context.Context, id uuid.UUID) (*m.TimetableEntryModel, error) {
	for i := range s.rows {
		if s.rows[i].TimetableEntryID == id {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *mockEntryStore) Create(_ context.Context, row *m.TimetableEntryModel) error {
	if row.TimetableEntryID == uuid.Nil {
		row.TimetableEntryID = uuid.New()
	}
	s.rows = append(s.rows, *row)
	return nil
}

func (s *mockEntryStore) Delete(_ context.Context, id uuid.UUID) error {
	for i := range s.rows {
		if s.rows[i].TimetableEntryID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeGenerator struct {
	answer string
	err    error

	calls  int
	system string
	prompt string
}

func (g *fakeGenerator) Generate(_ context.Context, systemInstruction, userPrompt string) (string, error) {
	g.calls++
	g.system, g.prompt = systemInstruction, userPrompt
	return g.answer, g.err
}

func entry(user uuid.UUID, name, code, day string) m.TimetableEntryModel {
	return m.TimetableEntryModel{
		TimetableEntryID:         uuid.New(),
		TimetableEntryUserID:     user,
		TimetableEntryCourseName: name,
		TimetableEntryCourseCode: code,
		TimetableEntryInstructor: "Dr. Rao",
		TimetableEntryDayOfWeek:  day,
		TimetableEntryStartTime:  "10:00",
		TimetableEntryEndTime:    "11:00",
		TimetableEntryRoom:       "R-204",
		TimetableEntryType:       "LECTURE",
	}
}
