// file: internals/features/college/timetable/model/course_model.go
package model

import (
	"github.com/google/uuid"
)

/* =======================================================
   CourseModel: table courses
   ======================================================= */

type CourseModel struct {
	CourseID      uuid.UUID `json:"course_id"      gorm:"type:uuid;primaryKey;column:course_id;default:gen_random_uuid()"`
	CourseCode    string    `json:"course_code"    gorm:"type:text;not null;column:course_code"`
	CourseName    string    `json:"course_name"    gorm:"type:text;not null;column:course_name"`
	CourseCredits int       `json:"course_credits" gorm:"type:int;not null;default:0;column:course_credits"`

	// 1..N, inherited by every schedule of the course
	CourseSemester int `json:"course_semester" gorm:"type:int;not null;column:course_semester"`

	CourseDepartmentID uuid.UUID  `json:"course_department_id"         gorm:"type:uuid;not null;column:course_department_id"`
	CourseTeacherID    *uuid.UUID `json:"course_teacher_id,omitempty"  gorm:"type:uuid;column:course_teacher_id"`

	Department *DepartmentModel `json:"department,omitempty" gorm:"foreignKey:CourseDepartmentID;references:DepartmentID"`
	Teacher    *TeacherModel    `json:"teacher,omitempty"    gorm:"foreignKey:CourseTeacherID;references:TeacherID"`
	Schedules  []ScheduleModel  `json:"schedules,omitempty"  gorm:"foreignKey:ScheduleCourseID;references:CourseID"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func (c *CourseModel) DepartmentCode() string {
	if c == nil || c.Department == nil {
		return ""
	}
	return c.Department.DepartmentCode
}
