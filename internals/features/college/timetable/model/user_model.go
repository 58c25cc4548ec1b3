// file: internals/features/college/timetable/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the read-only projection of users needed for display names.
type UserModel struct {
	ID        uuid.UUID `json:"id"         gorm:"type:uuid;primaryKey;column:id"`
	Name      string    `json:"name"       gorm:"type:text;not null;column:name"`
	Email     string    `json:"email"      gorm:"type:text;not null;column:email"`
	Role      string    `json:"role"       gorm:"type:text;not null;column:role"`
	IsActive  bool      `json:"is_active"  gorm:"type:boolean;not null;default:true;column:is_active"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}
