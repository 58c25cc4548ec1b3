// file: internals/features/college/timetable/dto/timetable_dto.go
package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"college_backend/internals/features/college/timetable/grid"
	m "college_backend/internals/features/college/timetable/model"
	"college_backend/internals/features/college/timetable/repository"
)

/* =======================================================
   Requests
   ======================================================= */

// SaveTimetableRequest carries one semester/section page of the grid,
// indexed [day][period].
type SaveTimetableRequest struct {
	Semester  *int           `json:"semester"  validate:"required,gte=0"`
	Section   *int           `json:"section"   validate:"required,gte=0"`
	Timetable [][]*grid.Slot `json:"timetable" validate:"required"`
}

type ListScheduleQuery struct {
	CourseID  string `query:"course_id"`
	TeacherID string `query:"teacher_id"`
	Active    *bool  `query:"active"`
}

func (q ListScheduleQuery) ToFilter() (repository.ScheduleFilter, error) {
	var f repository.ScheduleFilter
	if s := strings.TrimSpace(q.CourseID); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return f, fmt.Errorf("course_id invalid")
		}
		f.CourseID = &id
	}
	if s := strings.TrimSpace(q.TeacherID); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return f, fmt.Errorf("teacher_id invalid")
		}
		f.TeacherID = &id
	}
	if q.Active != nil && *q.Active {
		f.ActiveOnly = true
	}
	return f, nil
}

/* =======================================================
   Responses
   ======================================================= */

type SubjectDetailResponse struct {
	SubjectName string   `json:"subjectName"`
	TeacherName string   `json:"teacherName"`
	RoomCodes   []string `json:"roomCodes"`
	// always null; colours are picked by the client
	Color *string `json:"color"`
}

func NewSubjectDetailsResponse(in map[string]grid.SubjectDetail) map[string]SubjectDetailResponse {
	out := make(map[string]SubjectDetailResponse, len(in))
	for code, d := range in {
		out[code] = SubjectDetailResponse{
			SubjectName: d.SubjectName,
			TeacherName: d.TeacherName,
			RoomCodes:   d.RoomCodes,
		}
	}
	return out
}

type ScheduleResponse struct {
	ScheduleID        uuid.UUID `json:"schedule_id"`
	ScheduleCourseID  uuid.UUID `json:"schedule_course_id"`
	ScheduleTeacherID uuid.UUID `json:"schedule_teacher_id"`
	ScheduleDayOfWeek string    `json:"schedule_day_of_week"`
	ScheduleStartTime string    `json:"schedule_start_time"`
	ScheduleEndTime   string    `json:"schedule_end_time"`
	ScheduleRoom      string    `json:"schedule_room"`
	ScheduleBuilding  *string   `json:"schedule_building,omitempty"`
	ScheduleType      string    `json:"schedule_type"`
	ScheduleIsActive  bool      `json:"schedule_is_active"`

	// Denormalized for display
	CourseCode  string `json:"course_code,omitempty"`
	CourseName  string `json:"course_name,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`
	// Period index, nil when the start time does not fall in a period
	Period *int `json:"period"`
}

func NewScheduleResponse(r *m.ScheduleModel) ScheduleResponse {
	out := ScheduleResponse{
		ScheduleID:        r.ScheduleID,
		ScheduleCourseID:  r.ScheduleCourseID,
		ScheduleTeacherID: r.ScheduleTeacherID,
		ScheduleDayOfWeek: r.ScheduleDayOfWeek,
		ScheduleStartTime: r.ScheduleStartTime,
		ScheduleEndTime:   r.ScheduleEndTime,
		ScheduleRoom:      r.ScheduleRoom,
		ScheduleBuilding:  r.ScheduleBuilding,
		ScheduleType:      string(r.ScheduleType),
		ScheduleIsActive:  r.ScheduleIsActive,
		TeacherName:       r.Teacher.DisplayName(),
	}
	if r.Course != nil {
		out.CourseCode = r.Course.CourseCode
		out.CourseName = r.Course.CourseName
	}
	if p, ok := grid.MapTimeToPeriod(r.ScheduleStartTime); ok {
		out.Period = &p
	}
	return out
}

func NewScheduleResponses(rows []m.ScheduleModel) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewScheduleResponse(&rows[i]))
	}
	return out
}
