// file: internals/features/college/timetable/repository/timetable_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "college_backend/internals/features/college/timetable/model"
)

// ScheduleFilter fields are optional and ANDed.
type ScheduleFilter struct {
	CourseID   *uuid.UUID
	TeacherID  *uuid.UUID
	ActiveOnly bool
}

// TimetableStore is the read side the timetable engine needs.
type TimetableStore interface {
	// ListScheduleEntries returns schedules with Course (+Department) and
	// Teacher.User loaded, ordered by day, start time, id.
	ListScheduleEntries(ctx context.Context, f ScheduleFilter) ([]m.ScheduleModel, error)
	// ListCourses returns courses with Teacher.User and Schedules loaded.
	ListCourses(ctx context.Context) ([]m.CourseModel, error)
}

type gormTimetableStore struct {
	db *gorm.DB
}

func NewTimetableStore(db *gorm.DB) TimetableStore {
	return &gormTimetableStore{db: db}
}

func (s *gormTimetableStore) ListScheduleEntries(ctx context.Context, f ScheduleFilter) ([]m.ScheduleModel, error) {
	q := s.db.WithContext(ctx).
		Model(&m.ScheduleModel{}).
		Preload("Course").
		Preload("Course.Department").
		Preload("Teacher").
		Preload("Teacher.User")

	if f.CourseID != nil {
		q = q.Where("schedule_course_id = ?", *f.CourseID)
	}
	if f.TeacherID != nil {
		q = q.Where("schedule_teacher_id = ?", *f.TeacherID)
	}
	if f.ActiveOnly {
		q = q.Where("schedule_is_active = ?", true)
	}

	var rows []m.ScheduleModel
	if err := q.
		Order("schedule_day_of_week ASC").
		Order("schedule_start_time ASC").
		Order("schedule_id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return rows, nil
}

func (s *gormTimetableStore) ListCourses(ctx context.Context) ([]m.CourseModel, error) {
	var rows []m.CourseModel
	if err := s.db.WithContext(ctx).
		Preload("Teacher").
		Preload("Teacher.User").
		Preload("Schedules", func(db *gorm.DB) *gorm.DB {
			return db.Order("schedule_day_of_week ASC").Order("schedule_start_time ASC")
		}).
		Order("course_code ASC").
		Order("course_id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return rows, nil
}
