// file: internals/features/college/timetable/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleType string

const (
	ScheduleLecture  ScheduleType = "LECTURE"
	ScheduleLab      ScheduleType = "LAB"
	ScheduleTutorial ScheduleType = "TUTORIAL"
	ScheduleSeminar  ScheduleType = "SEMINAR"
)

/* =======================================================
   ScheduleModel: one recurring weekly session of a course
   ======================================================= */

type ScheduleModel struct {
	ScheduleID        uuid.UUID `json:"schedule_id"         gorm:"type:uuid;primaryKey;column:schedule_id;default:gen_random_uuid()"`
	ScheduleCourseID  uuid.UUID `json:"schedule_course_id"  gorm:"type:uuid;not null;index;column:schedule_course_id"`
	ScheduleTeacherID uuid.UUID `json:"schedule_teacher_id" gorm:"type:uuid;not null;index;column:schedule_teacher_id"`

	// MONDAY..FRIDAY; stored as free text
	ScheduleDayOfWeek string `json:"schedule_day_of_week" gorm:"type:text;not null;column:schedule_day_of_week"`
	// free-text time of day, "10:00" or "10:00 AM"
	ScheduleStartTime string `json:"schedule_start_time" gorm:"type:text;not null;column:schedule_start_time"`
	ScheduleEndTime   string `json:"schedule_end_time"   gorm:"type:text;not null;column:schedule_end_time"`

	ScheduleRoom     string       `json:"schedule_room"               gorm:"type:text;column:schedule_room"`
	ScheduleBuilding *string      `json:"schedule_building,omitempty" gorm:"type:text;column:schedule_building"`
	ScheduleType     ScheduleType `json:"schedule_type"               gorm:"type:text;not null;default:'LECTURE';column:schedule_type"`
	ScheduleIsActive bool         `json:"schedule_is_active"          gorm:"type:boolean;not null;default:true;column:schedule_is_active"`

	ScheduleCreatedAt time.Time `json:"schedule_created_at" gorm:"column:schedule_created_at;not null;autoCreateTime"`
	ScheduleUpdatedAt time.Time `json:"schedule_updated_at" gorm:"column:schedule_updated_at;not null;autoUpdateTime"`

	Course  *CourseModel  `json:"course,omitempty"  gorm:"foreignKey:ScheduleCourseID;references:CourseID"`
	Teacher *TeacherModel `json:"teacher,omitempty" gorm:"foreignKey:ScheduleTeacherID;references:TeacherID"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
