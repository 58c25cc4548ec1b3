// file: internals/features/college/personal_timetable/service/prompt.go
package service

import (
	"fmt"
	"strings"

	m "college_backend/internals/features/college/personal_timetable/model"
)

const NoClassesAnswer = "You don't have any classes in your timetable yet. Please add some classes first!"

const systemInstructionTemplate = `You are a helpful college timetable assistant.
Answer questions about the student's schedule clearly and concisely.

Student's Timetable:
%s

Rules:
- Always reference specific courses, times, and rooms when relevant
- If asking about "today" or "tomorrow", current day is provided
- Be friendly and helpful
- If the question can't be answered from the timetable, politely say so`

// RenderTimetable writes one line per entry.
func RenderTimetable(entries []m.TimetableEntryModel) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("- %s (%s): %s %s-%s, %s, taught by %s (%s)",
			e.TimetableEntryCourseName,
			e.TimetableEntryCourseCode,
			e.TimetableEntryDayOfWeek,
			e.TimetableEntryStartTime,
			e.TimetableEntryEndTime,
			e.TimetableEntryRoom,
			e.TimetableEntryInstructor,
			e.TimetableEntryType,
		))
	}
	return strings.Join(lines, "\n")
}

func SystemInstruction(entries []m.TimetableEntryModel) string {
	return fmt.Sprintf(systemInstructionTemplate, RenderTimetable(entries))
}
