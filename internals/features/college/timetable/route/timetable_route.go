// file: internals/features/college/timetable/route/timetable_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	ctrl "college_backend/internals/features/college/timetable/controller"
)

// ScheduleRoutes mounts under an authenticated group. Fixed paths come
// before anything parameterised.
func ScheduleRoutes(r fiber.Router, svc ctrl.TimetableService) {
	ctl := ctrl.NewTimetableController(svc, validator.New())

	grp := r.Group("/schedules")
	grp.Get("/timetable", ctl.GetFullTimetable)
	grp.Get("/subjects-details", ctl.GetSubjectsDetails)
	grp.Post("/save", ctl.SaveTimetable)
	grp.Post("/generate", ctl.GenerateTimetable)
	grp.Get("/", ctl.ListSchedules)
}
