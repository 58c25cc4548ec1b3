package service

import (
	"context"

	m "college_backend/internals/features/college/timetable/model"
	"college_backend/internals/features/college/timetable/repository"
)

type mockTimetableStore struct {
	schedules []m.ScheduleModel
	courses   []m.CourseModel
	err       error

	lastFilter repository.ScheduleFilter
	calls      int
}

func (s *mockTimetableStore) ListScheduleEntries(_ context.Context, f repository.ScheduleFilter) ([]m.ScheduleModel, error) {
	s.calls++
	s.lastFilter = f
	if s.err != nil {
		return nil, s.err
	}
	return s.schedules, nil
}

func (s *mockTimetableStore) ListCourses(_ context.Context) ([]m.CourseModel, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.courses, nil
}
