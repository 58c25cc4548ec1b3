// file: internals/features/college/personal_timetable/service/relevance.go
package service

import (
	"strings"

	m "college_backend/internals/features/college/personal_timetable/model"
)

// ExtractRelevant keeps the entries whose course name (case-insensitive) or
// day of week (as stored) occurs in the query. Input order is kept and the
// result is never nil.
func ExtractRelevant(entries []m.TimetableEntryModel, query string) []m.TimetableEntryModel {
	q := strings.ToLower(query)
	out := make([]m.TimetableEntryModel, 0)
	for _, e := range entries {
		if mentions(q, strings.ToLower(e.TimetableEntryCourseName)) || mentions(q, e.TimetableEntryDayOfWeek) {
			out = append(out, e)
		}
	}
	return out
}

// an empty needle is not a mention
func mentions(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}
