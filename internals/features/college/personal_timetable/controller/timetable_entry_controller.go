// file: internals/features/college/personal_timetable/controller/timetable_entry_controller.go
package controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	d "college_backend/internals/features/college/personal_timetable/dto"
	m "college_backend/internals/features/college/personal_timetable/model"
	svc "college_backend/internals/features/college/personal_timetable/service"
	helper "college_backend/internals/helpers"
)

type EntryService interface {
	List(ctx context.Context, userID uuid.UUID) ([]m.TimetableEntryModel, error)
	Create(ctx context.Context, userID uuid.UUID, row *m.TimetableEntryModel) error
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

type QueryService interface {
	Answer(ctx context.Context, userID uuid.UUID, query string) (svc.QueryResult, error)
}

/* =========================
   Controller & Constructor
   ========================= */

type PersonalTimetableController struct {
	Entries  EntryService
	Query    QueryService
	Validate *validator.Validate
}

func NewPersonalTimetableController(entries EntryService, query QueryService, v *validator.Validate) *PersonalTimetableController {
	if v == nil {
		v = validator.New()
	}
	return &PersonalTimetableController{Entries: entries, Query: query, Validate: v}
}

/* =========================
   POST /timetable
   ========================= */

func (ctl *PersonalTimetableController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid JSON body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := ctl.Entries.Create(c.UserContext(), userID, row); err != nil {
		log.Printf("[PersonalTimetable.Create] %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "timetable entry created", d.NewTimetableEntryResponse(row))
}

/* =========================
   GET /timetable
   ========================= */

func (ctl *PersonalTimetableController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	rows, err := ctl.Entries.List(c.UserContext(), userID)
	if err != nil {
		log.Printf("[PersonalTimetable.List] %v", err)
		return helper.WritePGError(c, err)
	}
	out := d.NewTimetableEntryResponses(rows)
	return helper.JsonList(c, "ok", out, len(out))
}

/* =========================
   DELETE /timetable/:id
   ========================= */

func (ctl *PersonalTimetableController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	entryID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusNotFound, "Entry not found")
	}

	if err := ctl.Entries.Delete(c.UserContext(), userID, entryID); err != nil {
		if errors.Is(err, svc.ErrEntryNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Entry not found")
		}
		log.Printf("[PersonalTimetable.Delete] %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Deleted successfully", fiber.Map{"id": entryID})
}

/* =========================
   POST /query
   ========================= */

func (ctl *PersonalTimetableController) Ask(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid JSON body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctl.Query.Answer(c.UserContext(), userID, req.Query)
	if err != nil {
		if errors.Is(err, svc.ErrGenerationFailed) {
			return helper.JsonError(c, http.StatusBadGateway, "failed to generate answer")
		}
		log.Printf("[PersonalTimetable.Ask] %v", err)
		return helper.WritePGError(c, err)
	}

	return c.Status(http.StatusOK).JSON(d.QueryResponse{
		Answer:  res.Answer,
		Entries: d.NewTimetableEntryResponses(res.Entries),
	})
}
