package details

import (
	"github.com/gofiber/fiber/v2"

	personalCtrl "college_backend/internals/features/college/personal_timetable/controller"
	personalRoute "college_backend/internals/features/college/personal_timetable/route"
)

// /api/timetable/* and /api/query
func PersonalTimetableRoutes(r fiber.Router, entries personalCtrl.EntryService, query personalCtrl.QueryService, queryGuards ...fiber.Handler) {
	personalRoute.PersonalTimetableRoutes(r, entries, query, queryGuards...)
}
