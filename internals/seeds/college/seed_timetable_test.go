package college

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college_backend/internals/databases/dbtest"
	"college_backend/internals/features/college/timetable/grid"
)

func TestLoadTimetableSeed_BundledFixture(t *testing.T) {
	seed, err := LoadTimetableSeed("data_timetable.json")
	require.NoError(t, err)

	require.NotEmpty(t, seed.Courses)
	depts := map[string]bool{}
	for _, d := range seed.Departments {
		depts[d.Code] = true
	}
	teachers := map[string]bool{}
	for _, tc := range seed.Teachers {
		teachers[tc.Email] = true
	}

	for _, c := range seed.Courses {
		assert.True(t, depts[c.Department], "course %s department", c.Code)
		assert.True(t, teachers[c.TeacherEmail], "course %s teacher", c.Code)
		assert.GreaterOrEqual(t, c.Semester, 1)
		for _, s := range c.Schedules {
			_, ok := grid.DayIndex[s.Day]
			assert.True(t, ok, "course %s day %q", c.Code, s.Day)
			_, ok = grid.MapTimeToPeriod(s.Start)
			assert.True(t, ok, "course %s start %q", c.Code, s.Start)
		}
	}
}

func TestLoadTimetableSeed_Errors(t *testing.T) {
	_, err := LoadTimetableSeed(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
	_, err = LoadTimetableSeed(bad)
	assert.Error(t, err)
}

func TestSeedTeacher_LooksUpByEmailOnly(t *testing.T) {
	db, rec := dbtest.DryRun(t)

	_, err := seedTeacher(db, TeacherSeed{
		Name:        "Dr. Anita Rao",
		Email:       " Anita.Rao@college.edu ",
		Department:  "CSE",
		Designation: "Professor",
	})
	require.NoError(t, err)

	users := rec.WithPrefix(`SELECT * FROM "users"`)
	require.Len(t, users, 1)
	assert.Contains(t, users[0], "WHERE email = 'anita.rao@college.edu'")
	assert.NotContains(t, users[0], `"users"."id" =`)

	teachers := rec.WithPrefix(`SELECT * FROM "teachers"`)
	require.Len(t, teachers, 1)
	assert.Contains(t, teachers[0], "WHERE teacher_user_id = ")
	assert.NotContains(t, teachers[0], `"teachers"."teacher_id" =`)

	inserts := rec.WithPrefix(`INSERT INTO "users"`)
	require.Len(t, inserts, 1)
	assert.Contains(t, inserts[0], "'anita.rao@college.edu'")
	assert.Contains(t, inserts[0], "'Dr. Anita Rao'")
}

func TestSeedDepartment_LooksUpByCodeOnly(t *testing.T) {
	db, rec := dbtest.DryRun(t)

	_, err := seedDepartment(db, DepartmentSeed{Code: "CSE", Name: "Computer Science"})
	require.NoError(t, err)

	selects := rec.WithPrefix(`SELECT * FROM "departments"`)
	require.Len(t, selects, 1)
	assert.Contains(t, selects[0], "WHERE department_code = 'CSE'")
	assert.NotContains(t, selects[0], `"departments"."department_id" =`)
}
