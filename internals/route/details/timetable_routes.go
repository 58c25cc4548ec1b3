package details

import (
	"github.com/gofiber/fiber/v2"

	timetableCtrl "college_backend/internals/features/college/timetable/controller"
	timetableRoute "college_backend/internals/features/college/timetable/route"
)

// /api/schedules/*
func TimetableRoutes(r fiber.Router, svc timetableCtrl.TimetableService) {
	timetableRoute.ScheduleRoutes(r, svc)
}
