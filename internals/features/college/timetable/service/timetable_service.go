// file: internals/features/college/timetable/service/timetable_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"college_backend/internals/features/college/timetable/grid"
	m "college_backend/internals/features/college/timetable/model"
	"college_backend/internals/features/college/timetable/repository"
)

type TimetableService struct {
	store   repository.TimetableStore
	builder *grid.Builder
	log     *zap.Logger
}

func NewTimetableService(store repository.TimetableStore, dims grid.Dimensions, section grid.SectionResolver, log *zap.Logger) *TimetableService {
	if log == nil {
		log = zap.NewNop()
	}
	return &TimetableService{
		store:   store,
		builder: grid.NewBuilder(dims, section, log),
		log:     log,
	}
}

/* =========================
   Read side
   ========================= */

// FullTimetable builds the semester × section × day × period grid from every
// schedule row, in store order.
func (s *TimetableService) FullTimetable(ctx context.Context) (*grid.Grid, error) {
	rows, err := s.store.ListScheduleEntries(ctx, repository.ScheduleFilter{})
	if err != nil {
		return nil, err
	}

	entries := make([]grid.Entry, 0, len(rows))
	for i := range rows {
		entries = append(entries, toGridEntry(&rows[i]))
	}

	g := s.builder.Build(entries)
	s.log.Debug("timetable built",
		zap.Int("schedules", len(rows)),
		zap.Int("filled_cells", g.Filled()),
	)
	return g, nil
}

func (s *TimetableService) SubjectsDetails(ctx context.Context) (map[string]grid.SubjectDetail, error) {
	courses, err := s.store.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	in := make([]grid.CourseRooms, 0, len(courses))
	for i := range courses {
		c := &courses[i]
		rooms := make([]string, 0, len(c.Schedules))
		for _, sch := range c.Schedules {
			rooms = append(rooms, sch.ScheduleRoom)
		}
		in = append(in, grid.CourseRooms{
			CourseCode:  c.CourseCode,
			CourseName:  c.CourseName,
			TeacherName: c.Teacher.DisplayName(),
			Rooms:       rooms,
		})
	}
	return grid.BuildSubjectDetails(in), nil
}

func (s *TimetableService) ListSchedules(ctx context.Context, f repository.ScheduleFilter) ([]m.ScheduleModel, error) {
	return s.store.ListScheduleEntries(ctx, f)
}

/* =========================
   Write side (placeholders)
   ========================= */

// SaveTimetable accepts a semester/section grid and stores nothing. There is
// no persistence format for edited grids yet.
func (s *TimetableService) SaveTimetable(ctx context.Context, semester, section int, timetable [][]*grid.Slot) error {
	s.log.Info("timetable save requested; not persisted",
		zap.Int("semester", semester),
		zap.Int("section", section),
		zap.Int("days", len(timetable)),
	)
	return nil
}

// GenerateTimetable writes nothing yet; it returns the current grid as built
// by FullTimetable.
func (s *TimetableService) GenerateTimetable(ctx context.Context) (*grid.Grid, error) {
	s.log.Info("timetable generation requested; returning current grid")
	return s.FullTimetable(ctx)
}

func toGridEntry(r *m.ScheduleModel) grid.Entry {
	e := grid.Entry{
		ID:          r.ScheduleID.String(),
		DayOfWeek:   r.ScheduleDayOfWeek,
		StartTime:   r.ScheduleStartTime,
		Room:        r.ScheduleRoom,
		TeacherName: r.Teacher.DisplayName(),
	}
	if r.Course != nil {
		e.CourseCode = r.Course.CourseCode
		e.Semester = r.Course.CourseSemester
		e.Department = r.Course.DepartmentCode()
	}
	return e
}
