// file: internals/features/college/personal_timetable/dto/timetable_entry_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "college_backend/internals/features/college/personal_timetable/model"
)

/* =======================================================
   Requests
   ======================================================= */

type CreateTimetableEntryRequest struct {
	CourseName string `json:"courseName" validate:"required,max=200"`
	CourseCode string `json:"courseCode" validate:"required,max=50"`
	Instructor string `json:"instructor" validate:"required,max=200"`
	DayOfWeek  string `json:"dayOfWeek"  validate:"required,max=20"`
	StartTime  string `json:"startTime"  validate:"required,max=20"`
	EndTime    string `json:"endTime"    validate:"required,max=20"`
	Room       string `json:"room"       validate:"required,max=50"`
	Type       string `json:"type"       validate:"required,max=30"`
}

func (r *CreateTimetableEntryRequest) Normalize() {
	r.CourseName = strings.TrimSpace(r.CourseName)
	r.CourseCode = strings.TrimSpace(r.CourseCode)
	r.Instructor = strings.TrimSpace(r.Instructor)
	r.DayOfWeek = strings.TrimSpace(r.DayOfWeek)
	r.StartTime = strings.TrimSpace(r.StartTime)
	r.EndTime = strings.TrimSpace(r.EndTime)
	r.Room = strings.TrimSpace(r.Room)
	r.Type = strings.TrimSpace(r.Type)
}

func (r CreateTimetableEntryRequest) ToModel() *m.TimetableEntryModel {
	return &m.TimetableEntryModel{
		TimetableEntryCourseName: r.CourseName,
		TimetableEntryCourseCode: r.CourseCode,
		TimetableEntryInstructor: r.Instructor,
		TimetableEntryDayOfWeek:  r.DayOfWeek,
		TimetableEntryStartTime:  r.StartTime,
		TimetableEntryEndTime:    r.EndTime,
		TimetableEntryRoom:       r.Room,
		TimetableEntryType:       r.Type,
	}
}

// Query may be empty; that is still a valid question.
type QueryRequest struct {
	Query string `json:"query" validate:"max=2000"`
}

/* =======================================================
   Responses (camelCase, consumed by the web client)
   ======================================================= */

type TimetableEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	CourseName string    `json:"courseName"`
	CourseCode string    `json:"courseCode"`
	Instructor string    `json:"instructor"`
	DayOfWeek  string    `json:"dayOfWeek"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Room       string    `json:"room"`
	Type       string    `json:"type"`
}

func NewTimetableEntryResponse(e *m.TimetableEntryModel) TimetableEntryResponse {
	return TimetableEntryResponse{
		ID:         e.TimetableEntryID,
		CourseName: e.TimetableEntryCourseName,
		CourseCode: e.TimetableEntryCourseCode,
		Instructor: e.TimetableEntryInstructor,
		DayOfWeek:  e.TimetableEntryDayOfWeek,
		StartTime:  e.TimetableEntryStartTime,
		EndTime:    e.TimetableEntryEndTime,
		Room:       e.TimetableEntryRoom,
		Type:       e.TimetableEntryType,
	}
}

func NewTimetableEntryResponses(rows []m.TimetableEntryModel) []TimetableEntryResponse {
	out := make([]TimetableEntryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewTimetableEntryResponse(&rows[i]))
	}
	return out
}

type QueryResponse struct {
	Answer  string                   `json:"answer"`
	Entries []TimetableEntryResponse `json:"entries"`
}
