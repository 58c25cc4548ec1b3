// file: internals/features/college/timetable/controller/timetable_controller.go
package controller

import (
	"context"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	d "college_backend/internals/features/college/timetable/dto"
	"college_backend/internals/features/college/timetable/grid"
	m "college_backend/internals/features/college/timetable/model"
	"college_backend/internals/features/college/timetable/repository"
	helper "college_backend/internals/helpers"
)

// TimetableService is what the controller needs from service.TimetableService.
type TimetableService interface {
	FullTimetable(ctx context.Context) (*grid.Grid, error)
	SubjectsDetails(ctx context.Context) (map[string]grid.SubjectDetail, error)
	ListSchedules(ctx context.Context, f repository.ScheduleFilter) ([]m.ScheduleModel, error)
	SaveTimetable(ctx context.Context, semester, section int, timetable [][]*grid.Slot) error
	GenerateTimetable(ctx context.Context) (*grid.Grid, error)
}

/* =========================
   Controller & Constructor
   ========================= */

type TimetableController struct {
	Svc      TimetableService
	Validate *validator.Validate
}

func NewTimetableController(svc TimetableService, v *validator.Validate) *TimetableController {
	if v == nil {
		v = validator.New()
	}
	return &TimetableController{Svc: svc, Validate: v}
}

/* =========================
   GET /timetable
   ========================= */

func (ctl *TimetableController) GetFullTimetable(c *fiber.Ctx) error {
	g, err := ctl.Svc.FullTimetable(c.UserContext())
	if err != nil {
		log.Printf("[Timetable.GetFullTimetable] %v", err)
		return helper.WritePGError(c, err)
	}
	return c.Status(http.StatusOK).JSON(g)
}

/* =========================
   GET /subjects-details
   ========================= */

func (ctl *TimetableController) GetSubjectsDetails(c *fiber.Ctx) error {
	details, err := ctl.Svc.SubjectsDetails(c.UserContext())
	if err != nil {
		log.Printf("[Timetable.GetSubjectsDetails] %v", err)
		return helper.WritePGError(c, err)
	}
	return c.Status(http.StatusOK).JSON(d.NewSubjectDetailsResponse(details))
}

/* =========================
   GET / (flat schedule list)
   ========================= */

func (ctl *TimetableController) ListSchedules(c *fiber.Ctx) error {
	var q d.ListScheduleQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	f, err := q.ToFilter()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	rows, err := ctl.Svc.ListSchedules(c.UserContext(), f)
	if err != nil {
		log.Printf("[Timetable.ListSchedules] %v", err)
		return helper.WritePGError(c, err)
	}
	out := d.NewScheduleResponses(rows)
	return helper.JsonList(c, "ok", out, len(out))
}

/* =========================
   POST /save, POST /generate
   ========================= */

func (ctl *TimetableController) SaveTimetable(c *fiber.Ctx) error {
	var req d.SaveTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid JSON body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Svc.SaveTimetable(c.UserContext(), *req.Semester, *req.Section, req.Timetable); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "failed to save timetable: "+err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"detail": "Timetable saved successfully"})
}

func (ctl *TimetableController) GenerateTimetable(c *fiber.Ctx) error {
	g, err := ctl.Svc.GenerateTimetable(c.UserContext())
	if err != nil {
		log.Printf("[Timetable.GenerateTimetable] %v", err)
		return helper.WritePGError(c, err)
	}
	return c.Status(http.StatusOK).JSON(g)
}
