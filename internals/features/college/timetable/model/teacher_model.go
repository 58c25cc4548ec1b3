// file: internals/features/college/timetable/model/teacher_model.go
package model

import (
	"github.com/google/uuid"
)

type TeacherModel struct {
	TeacherID     uuid.UUID `json:"teacher_id"      gorm:"type:uuid;primaryKey;column:teacher_id;default:gen_random_uuid()"`
	TeacherUserID uuid.UUID `json:"teacher_user_id" gorm:"type:uuid;not null;column:teacher_user_id"`

	TeacherDepartment  string  `json:"teacher_department"            gorm:"type:text;column:teacher_department"`
	TeacherDesignation string  `json:"teacher_designation"           gorm:"type:text;column:teacher_designation"`
	TeacherOfficeRoom  *string `json:"teacher_office_room,omitempty" gorm:"type:text;column:teacher_office_room"`

	User *UserModel `json:"user,omitempty" gorm:"foreignKey:TeacherUserID;references:ID"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

// DisplayName returns the linked user's name, or "" when the user is missing.
func (t *TeacherModel) DisplayName() string {
	if t == nil || t.User == nil {
		return ""
	}
	return t.User.Name
}
