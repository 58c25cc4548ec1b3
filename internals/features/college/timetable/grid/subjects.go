// file: internals/features/college/timetable/grid/subjects.go
package grid

import "strings"

const UnassignedTeacher = "Unassigned"

// CourseRooms is a course together with the rooms of its schedule entries.
type CourseRooms struct {
	CourseCode  string
	CourseName  string
	TeacherName string
	Rooms       []string
}

type SubjectDetail struct {
	SubjectName string
	TeacherName string
	RoomCodes   []string
}

// BuildSubjectDetails keys courses by code. Courses sharing a code collapse
// to the last one seen. Rooms keep first-seen order without duplicates.
func BuildSubjectDetails(courses []CourseRooms) map[string]SubjectDetail {
	out := make(map[string]SubjectDetail, len(courses))
	for _, c := range courses {
		out[c.CourseCode] = SubjectDetail{
			SubjectName: c.CourseName,
			TeacherName: orDefault(c.TeacherName, UnassignedTeacher),
			RoomCodes:   distinctRooms(c.Rooms),
		}
	}
	return out
}

func distinctRooms(rooms []string) []string {
	seen := make(map[string]struct{}, len(rooms))
	out := make([]string, 0, len(rooms))
	for _, r := range rooms {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	if len(out) == 0 {
		return []string{RoomTBA}
	}
	return out
}
