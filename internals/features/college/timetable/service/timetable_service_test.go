package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college_backend/internals/features/college/timetable/grid"
	m "college_backend/internals/features/college/timetable/model"
	"college_backend/internals/features/college/timetable/repository"
)

func teacher(name string) *m.TeacherModel {
	return &m.TeacherModel{TeacherID: uuid.New(), User: &m.UserModel{ID: uuid.New(), Name: name}}
}

func TestFullTimetable_MapsModels(t *testing.T) {
	course := &m.CourseModel{
		CourseID:       uuid.New(),
		CourseCode:     "CS301",
		CourseSemester: 3,
		Department:     &m.DepartmentModel{DepartmentCode: "CSE"},
	}
	store := &mockTimetableStore{schedules: []m.ScheduleModel{{
		ScheduleID:        uuid.New(),
		ScheduleDayOfWeek: "WEDNESDAY",
		ScheduleStartTime: "11:00 AM",
		ScheduleRoom:      "C204",
		Course:            course,
		Teacher:           teacher("Dr. X"),
	}}}

	svc := NewTimetableService(store, grid.DefaultDimensions(), nil, nil)
	g, err := svc.FullTimetable(context.Background())
	require.NoError(t, err)

	slot := g.At(2, 0, 2, 2)
	require.NotNil(t, slot)
	assert.Equal(t, grid.Slot{TeacherName: "Dr. X", CourseCode: "CS301", Room: "C204"}, *slot)
	assert.Equal(t, 1, g.Filled())
	assert.Equal(t, repository.ScheduleFilter{}, store.lastFilter)
}

func TestFullTimetable_MissingRelations(t *testing.T) {
	store := &mockTimetableStore{schedules: []m.ScheduleModel{
		// no course: semester 0, skipped
		{ScheduleID: uuid.New(), ScheduleDayOfWeek: "MONDAY", ScheduleStartTime: "10:00"},
		// no teacher user: Unknown
		{
			ScheduleID:        uuid.New(),
			ScheduleDayOfWeek: "MONDAY",
			ScheduleStartTime: "10:00",
			Course:            &m.CourseModel{CourseCode: "MA101", CourseSemester: 1},
			Teacher:           &m.TeacherModel{TeacherID: uuid.New()},
		},
	}}

	g, err := NewTimetableService(store, grid.DefaultDimensions(), nil, nil).FullTimetable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, g.Filled())

	slot := g.At(0, 0, 0, 1)
	require.NotNil(t, slot)
	assert.Equal(t, grid.UnknownTeacher, slot.TeacherName)
	assert.Equal(t, grid.RoomTBA, slot.Room)
}

func TestFullTimetable_StoreError(t *testing.T) {
	boom := errors.New("db down")
	_, err := NewTimetableService(&mockTimetableStore{err: boom}, grid.DefaultDimensions(), nil, nil).
		FullTimetable(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSubjectsDetails(t *testing.T) {
	store := &mockTimetableStore{courses: []m.CourseModel{
		{
			CourseCode: "CS301",
			CourseName: "DBMS",
			Teacher:    teacher("Dr. X"),
			Schedules: []m.ScheduleModel{
				{ScheduleRoom: "C204"},
				{ScheduleRoom: "C204"},
				{ScheduleRoom: "LAB1"},
			},
		},
		{CourseCode: "HS101", CourseName: "Ethics"},
	}}

	out, err := NewTimetableService(store, grid.DefaultDimensions(), nil, nil).SubjectsDetails(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	dbms := out["CS301"]
	assert.Equal(t, "DBMS", dbms.SubjectName)
	assert.Equal(t, "Dr. X", dbms.TeacherName)
	assert.ElementsMatch(t, []string{"C204", "LAB1"}, dbms.RoomCodes)

	ethics := out["HS101"]
	assert.Equal(t, grid.UnassignedTeacher, ethics.TeacherName)
	assert.Equal(t, []string{grid.RoomTBA}, ethics.RoomCodes)
}

func TestListSchedules_PassesFilter(t *testing.T) {
	id := uuid.New()
	store := &mockTimetableStore{}
	f := repository.ScheduleFilter{CourseID: &id, ActiveOnly: true}

	_, err := NewTimetableService(store, grid.DefaultDimensions(), nil, nil).ListSchedules(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, f, store.lastFilter)
}

func TestSaveTimetable_IsNoOp(t *testing.T) {
	store := &mockTimetableStore{}
	svc := NewTimetableService(store, grid.DefaultDimensions(), nil, nil)

	assert.NoError(t, svc.SaveTimetable(context.Background(), 1, 0, [][]*grid.Slot{{nil}}))
	assert.Equal(t, 0, store.calls)
}

func TestGenerateTimetable_ReturnsCurrentGrid(t *testing.T) {
	store := &mockTimetableStore{schedules: []m.ScheduleModel{{
		ScheduleID:        uuid.New(),
		ScheduleDayOfWeek: "MONDAY",
		ScheduleStartTime: "09:00",
		ScheduleRoom:      "A1",
		Course:            &m.CourseModel{CourseCode: "CS101", CourseSemester: 1},
		Teacher:           teacher("Dr. Y"),
	}}}
	svc := NewTimetableService(store, grid.DefaultDimensions(), nil, nil)

	g, err := svc.GenerateTimetable(context.Background())
	require.NoError(t, err)
	slot := g.At(0, 0, 0, 0)
	require.NotNil(t, slot)
	assert.Equal(t, grid.Slot{TeacherName: "Dr. Y", CourseCode: "CS101", Room: "A1"}, *slot)
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, repository.ScheduleFilter{}, store.lastFilter)
}
