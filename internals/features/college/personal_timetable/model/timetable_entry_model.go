// file: internals/features/college/personal_timetable/model/timetable_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	tm "college_backend/internals/features/college/timetable/model"
)

/* =======================================================
   TimetableEntryModel: a user's own timetable row.
   timetable_entry_user_id references users(id) ON DELETE CASCADE.
   ======================================================= */

type TimetableEntryModel struct {
	TimetableEntryID     uuid.UUID `json:"timetable_entry_id"      gorm:"type:uuid;primaryKey;column:timetable_entry_id;default:gen_random_uuid()"`
	TimetableEntryUserID uuid.UUID `json:"timetable_entry_user_id" gorm:"type:uuid;not null;index;column:timetable_entry_user_id"`

	TimetableEntryCourseName string `json:"timetable_entry_course_name" gorm:"type:text;not null;column:timetable_entry_course_name"`
	TimetableEntryCourseCode string `json:"timetable_entry_course_code" gorm:"type:text;not null;column:timetable_entry_course_code"`
	TimetableEntryInstructor string `json:"timetable_entry_instructor"  gorm:"type:text;not null;column:timetable_entry_instructor"`
	TimetableEntryDayOfWeek  string `json:"timetable_entry_day_of_week" gorm:"type:text;not null;column:timetable_entry_day_of_week"`
	TimetableEntryStartTime  string `json:"timetable_entry_start_time"  gorm:"type:text;not null;column:timetable_entry_start_time"`
	TimetableEntryEndTime    string `json:"timetable_entry_end_time"    gorm:"type:text;not null;column:timetable_entry_end_time"`
	TimetableEntryRoom       string `json:"timetable_entry_room"        gorm:"type:text;not null;column:timetable_entry_room"`
	TimetableEntryType       string `json:"timetable_entry_type"        gorm:"type:text;not null;column:timetable_entry_type"`

	TimetableEntryCreatedAt time.Time `json:"timetable_entry_created_at" gorm:"column:timetable_entry_created_at;not null;autoCreateTime"`
	TimetableEntryUpdatedAt time.Time `json:"timetable_entry_updated_at" gorm:"column:timetable_entry_updated_at;not null;autoUpdateTime"`

	// Owner; never loaded by the stores, present for the FK constraint.
	User *tm.UserModel `json:"-" gorm:"foreignKey:TimetableEntryUserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (TimetableEntryModel) TableName() string {
	return "timetable_entries"
}
