// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	personalCtrl "college_backend/internals/features/college/personal_timetable/controller"
	timetableCtrl "college_backend/internals/features/college/timetable/controller"
	"college_backend/internals/middlewares"
	authMiddleware "college_backend/internals/middlewares/auth"
	routeDetails "college_backend/internals/route/details"
)

var startTime time.Time

// Deps carries everything the route tree mounts. DB may be nil in tests;
// /health then reports the database as down.
type Deps struct {
	DB               *gorm.DB
	JWTSecret        string
	Timetable        timetableCtrl.TimetableService
	Entries          personalCtrl.EntryService
	Query            personalCtrl.QueryService
	QueryRatePerMin  int
	CheckActiveUsers bool
}

func SetupRoutes(app *fiber.App, deps Deps) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, deps.DB)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	opts := authMiddleware.AuthJWTOpts{
		Secret:              deps.JWTSecret,
		AllowCookieFallback: true,
	}
	if deps.CheckActiveUsers && deps.DB != nil {
		opts.UserChecker = authMiddleware.ActiveUserChecker(deps.DB)
	}
	private := app.Group("/api", authMiddleware.AuthJWT(opts))

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Timetable routes...")
	routeDetails.TimetableRoutes(private, deps.Timetable)

	log.Println("[INFO] Mounting Personal Timetable routes...")
	routeDetails.PersonalTimetableRoutes(private, deps.Entries, deps.Query,
		middlewares.QueryRateLimiter(deps.QueryRatePerMin))
}
