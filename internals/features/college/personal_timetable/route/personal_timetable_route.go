// file: internals/features/college/personal_timetable/route/personal_timetable_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	ctrl "college_backend/internals/features/college/personal_timetable/controller"
)

// PersonalTimetableRoutes mounts /query and /timetable. queryGuards run
// before the query handler (rate limiting).
func PersonalTimetableRoutes(r fiber.Router, entries ctrl.EntryService, query ctrl.QueryService, queryGuards ...fiber.Handler) {
	ctl := ctrl.NewPersonalTimetableController(entries, query, validator.New())

	r.Post("/query", append(queryGuards, ctl.Ask)...)

	grp := r.Group("/timetable")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Delete("/:id", ctl.Delete)
}
