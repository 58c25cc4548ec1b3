package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	m "college_backend/internals/features/college/personal_timetable/model"
)

func codes(rows []m.TimetableEntryModel) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.TimetableEntryCourseCode)
	}
	return out
}

func TestExtractRelevant(t *testing.T) {
	u := uuid.New()
	entries := []m.TimetableEntryModel{
		entry(u, "DBMS", "CS301", "Monday"),
		entry(u, "Operating Systems", "CS302", "tuesday"),
		entry(u, "Networks", "CS303", "Friday"),
	}

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"course name any case", "When is my dbms class?", []string{"CS301"}},
		{"multi-word name", "Where is OPERATING SYSTEMS held", []string{"CS302"}},
		{"lowercase stored day", "what do I have on tuesday", []string{"CS302"}},
		{"capitalised day does not match lowered query", "Anything on Friday?", []string{}},
		{"nothing", "hello", []string{}},
		{"empty query", "", []string{}},
		{"order kept", "dbms or networks", []string{"CS301", "CS303"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractRelevant(entries, tc.query)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, codes(got))
		})
	}
}

func TestExtractRelevant_EmptyFieldsNeverMatch(t *testing.T) {
	u := uuid.New()
	got := ExtractRelevant([]m.TimetableEntryModel{entry(u, "", "X1", "")}, "anything at all")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
