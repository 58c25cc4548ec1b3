// file: internals/features/college/timetable/model/department_model.go
package model

import "github.com/google/uuid"

type DepartmentModel struct {
	DepartmentID   uuid.UUID `json:"department_id"   gorm:"type:uuid;primaryKey;column:department_id;default:gen_random_uuid()"`
	DepartmentName string    `json:"department_name" gorm:"type:text;not null;column:department_name"`
	DepartmentCode string    `json:"department_code" gorm:"type:text;not null;uniqueIndex;column:department_code"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}
