// file: internals/features/college/timetable/grid/grid.go
package grid

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	UnknownTeacher = "Unknown"
	RoomTBA        = "TBA"
)

// DayIndex maps weekday names to the day axis of the grid.
var DayIndex = map[string]int{
	"MONDAY":    0,
	"TUESDAY":   1,
	"WEDNESDAY": 2,
	"THURSDAY":  3,
	"FRIDAY":    4,
}

/* =========================
   Dimensions
   ========================= */

type Dimensions struct {
	Semesters int
	Sections  int
	Days      int
	Periods   int
}

func DefaultDimensions() Dimensions {
	return Dimensions{Semesters: 8, Sections: 2, Days: len(DayIndex), Periods: PeriodsPerDay}
}

func (d Dimensions) Cells() int {
	return d.Semesters * d.Sections * d.Days * d.Periods
}

func (d Dimensions) contains(sem, sec, day, period int) bool {
	return sem >= 0 && sem < d.Semesters &&
		sec >= 0 && sec < d.Sections &&
		day >= 0 && day < d.Days &&
		period >= 0 && period < d.Periods
}

/* =========================
   Slot & Grid
   ========================= */

// Slot is one occupied cell. On the wire it is [teacherName, courseCode, room].
type Slot struct {
	TeacherName string
	CourseCode  string
	Room        string
}

func (s Slot) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]string{s.TeacherName, s.CourseCode, s.Room})
}

func (s *Slot) UnmarshalJSON(b []byte) error {
	var parts []string
	if err := json.Unmarshal(b, &parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("slot must have 3 elements, got %d", len(parts))
	}
	s.TeacherName, s.CourseCode, s.Room = parts[0], parts[1], parts[2]
	return nil
}

// Grid is indexed [semester][section][day][period]; a nil cell is empty.
type Grid struct {
	dims  Dimensions
	cells [][][][]*Slot
}

func NewGrid(d Dimensions) *Grid {
	cells := make([][][][]*Slot, d.Semesters)
	for sem := range cells {
		cells[sem] = make([][][]*Slot, d.Sections)
		for sec := range cells[sem] {
			cells[sem][sec] = make([][]*Slot, d.Days)
			for day := range cells[sem][sec] {
				cells[sem][sec][day] = make([]*Slot, d.Periods)
			}
		}
	}
	return &Grid{dims: d, cells: cells}
}

func (g *Grid) Dimensions() Dimensions { return g.dims }

// At returns the slot at the cell, nil when empty or out of range.
func (g *Grid) At(sem, sec, day, period int) *Slot {
	if !g.dims.contains(sem, sec, day, period) {
		return nil
	}
	return g.cells[sem][sec][day][period]
}

// Set overwrites the cell. It reports false when the cell is out of range.
func (g *Grid) Set(sem, sec, day, period int, s Slot) bool {
	if !g.dims.contains(sem, sec, day, period) {
		return false
	}
	g.cells[sem][sec][day][period] = &s
	return true
}

// Filled counts occupied cells.
func (g *Grid) Filled() int {
	n := 0
	for _, sem := range g.cells {
		for _, sec := range sem {
			for _, day := range sec {
				for _, slot := range day {
					if slot != nil {
						n++
					}
				}
			}
		}
	}
	return n
}

func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.cells)
}

/* =========================
   Builder
   ========================= */

// Entry is a schedule row joined with its course and teacher.
// TeacherName is empty when the teacher or its user is missing.
type Entry struct {
	ID          string
	CourseCode  string
	Semester    int
	Department  string
	Batch       string
	DayOfWeek   string
	StartTime   string
	Room        string
	TeacherName string
}

type SectionInput struct {
	Batch      string
	Department string
	CourseCode string
	Semester   int
}

// SectionResolver picks the section axis for an entry.
type SectionResolver func(SectionInput) int

// FirstSection places everything in section 0. There is no rule yet for
// deriving sections from batch or department.
func FirstSection(SectionInput) int { return 0 }

type Builder struct {
	dims    Dimensions
	section SectionResolver
	log     *zap.Logger
}

func NewBuilder(dims Dimensions, section SectionResolver, log *zap.Logger) *Builder {
	if section == nil {
		section = FirstSection
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{dims: dims, section: section, log: log}
}

// Build fills a fresh grid in entry order. A later entry landing on an
// occupied cell replaces it. Rows that cannot be placed are logged and
// dropped; Build never fails.
func (b *Builder) Build(entries []Entry) *Grid {
	g := NewGrid(b.dims)

	for _, e := range entries {
		sem := e.Semester - 1
		if sem < 0 || sem >= b.dims.Semesters {
			b.skip(e, "semester out of range")
			continue
		}

		sec := b.section(SectionInput{
			Batch:      e.Batch,
			Department: e.Department,
			CourseCode: e.CourseCode,
			Semester:   e.Semester,
		})
		if sec < 0 || sec >= b.dims.Sections {
			b.skip(e, "section out of range")
			continue
		}

		day, ok := DayIndex[strings.ToUpper(strings.TrimSpace(e.DayOfWeek))]
		if !ok || day >= b.dims.Days {
			b.skip(e, "unknown day of week")
			continue
		}

		period, ok := MapTimeToPeriod(e.StartTime)
		if !ok || period >= b.dims.Periods {
			b.skip(e, "unmappable start time")
			continue
		}

		g.Set(sem, sec, day, period, Slot{
			TeacherName: orDefault(e.TeacherName, UnknownTeacher),
			CourseCode:  e.CourseCode,
			Room:        orDefault(e.Room, RoomTBA),
		})
	}
	return g
}

func (b *Builder) skip(e Entry, reason string) {
	b.log.Warn("timetable: skipping schedule entry",
		zap.String("schedule_id", e.ID),
		zap.String("course_code", e.CourseCode),
		zap.Int("semester", e.Semester),
		zap.String("day_of_week", e.DayOfWeek),
		zap.String("start_time", e.StartTime),
		zap.String("reason", reason),
	)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
