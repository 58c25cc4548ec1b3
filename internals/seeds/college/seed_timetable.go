package college

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "college_backend/internals/features/college/timetable/model"
)

// Mirrors data_timetable.json
type TimetableSeed struct {
	Departments []DepartmentSeed `json:"departments"`
	Teachers    []TeacherSeed    `json:"teachers"`
	Courses     []CourseSeed     `json:"courses"`
}

type DepartmentSeed struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type TeacherSeed struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
}

type CourseSeed struct {
	Code         string         `json:"code"`
	Name         string         `json:"name"`
	Credits      int            `json:"credits"`
	Semester     int            `json:"semester"`
	Department   string         `json:"department"`
	TeacherEmail string         `json:"teacher_email"`
	Schedules    []ScheduleSeed `json:"schedules"`
}

type ScheduleSeed struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
	Room  string `json:"room"`
	Type  string `json:"type"`
}

func LoadTimetableSeed(filePath string) (*TimetableSeed, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed TimetableSeed
	if err := sonic.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &seed, nil
}

// SeedTimetableFromJSON inserts departments, teachers, courses and their
// schedules. Rows that already exist (by code or email) are skipped, so it
// is safe to run on every start.
func SeedTimetableFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Reading seed file:", filePath)

	seed, err := LoadTimetableSeed(filePath)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		deptIDs := map[string]uuid.UUID{}
		for _, d := range seed.Departments {
			id, err := seedDepartment(tx, d)
			if err != nil {
				return err
			}
			deptIDs[d.Code] = id
		}

		teacherIDs := map[string]uuid.UUID{}
		for _, t := range seed.Teachers {
			id, err := seedTeacher(tx, t)
			if err != nil {
				return err
			}
			teacherIDs[normalizeEmail(t.Email)] = id
		}

		for _, c := range seed.Courses {
			var existing m.CourseModel
			err := tx.Where("course_code = ?", c.Code).First(&existing).Error
			if err == nil {
				log.Printf("ℹ️ Course %s already exists, skipping...", c.Code)
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("course %s: %w", c.Code, err)
			}

			deptID, ok := deptIDs[c.Department]
			if !ok {
				return fmt.Errorf("course %s: unknown department %q", c.Code, c.Department)
			}
			teacherID, ok := teacherIDs[normalizeEmail(c.TeacherEmail)]
			if !ok {
				return fmt.Errorf("course %s: unknown teacher %q", c.Code, c.TeacherEmail)
			}

			course := m.CourseModel{
				CourseCode:         c.Code,
				CourseName:         c.Name,
				CourseCredits:      c.Credits,
				CourseSemester:     c.Semester,
				CourseDepartmentID: deptID,
				CourseTeacherID:    &teacherID,
			}
			if err := tx.Create(&course).Error; err != nil {
				return fmt.Errorf("insert course %s: %w", c.Code, err)
			}

			for _, s := range c.Schedules {
				typ := m.ScheduleType(strings.ToUpper(strings.TrimSpace(s.Type)))
				if typ == "" {
					typ = m.ScheduleLecture
				}
				row := m.ScheduleModel{
					ScheduleCourseID:  course.CourseID,
					ScheduleTeacherID: teacherID,
					ScheduleDayOfWeek: s.Day,
					ScheduleStartTime: s.Start,
					ScheduleEndTime:   s.End,
					ScheduleRoom:      s.Room,
					ScheduleType:      typ,
					ScheduleIsActive:  true,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("insert schedule %s %s %s: %w", c.Code, s.Day, s.Start, err)
				}
			}
			log.Printf("✅ Inserted course %s with %d schedules", c.Code, len(c.Schedules))
		}
		return nil
	})
}

func seedDepartment(tx *gorm.DB, d DepartmentSeed) (uuid.UUID, error) {
	var row m.DepartmentModel
	if err := firstOrCreate(tx, &row,
		m.DepartmentModel{DepartmentCode: d.Code, DepartmentName: d.Name},
		"department_code = ?", d.Code); err != nil {
		return uuid.Nil, fmt.Errorf("department %s: %w", d.Code, err)
	}
	return row.DepartmentID, nil
}

// seedTeacher finds or creates the teacher's user (by email) and the teacher
// row linked to it.
func seedTeacher(tx *gorm.DB, t TeacherSeed) (uuid.UUID, error) {
	email := normalizeEmail(t.Email)

	var user m.UserModel
	if err := firstOrCreate(tx, &user,
		m.UserModel{ID: uuid.New(), Name: t.Name, Email: email, Role: "teacher", IsActive: true},
		"email = ?", email); err != nil {
		return uuid.Nil, fmt.Errorf("user %s: %w", email, err)
	}

	var teacher m.TeacherModel
	if err := firstOrCreate(tx, &teacher,
		m.TeacherModel{TeacherUserID: user.ID, TeacherDepartment: t.Department, TeacherDesignation: t.Designation},
		"teacher_user_id = ?", user.ID); err != nil {
		return uuid.Nil, fmt.Errorf("teacher %s: %w", email, err)
	}
	return teacher.TeacherID, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// firstOrCreate looks dest up by query only. dest must be zero-valued: a
// set primary key would be added to the lookup. attrs fill the row when it
// has to be inserted.
func firstOrCreate(tx *gorm.DB, dest, attrs any, query string, args ...any) error {
	return tx.Where(query, args...).Attrs(attrs).FirstOrCreate(dest).Error
}
