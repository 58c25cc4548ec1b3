package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"
	"go.uber.org/zap"

	"college_backend/internals/configs"
	database "college_backend/internals/databases"
	personalRepo "college_backend/internals/features/college/personal_timetable/repository"
	personalService "college_backend/internals/features/college/personal_timetable/service"
	"college_backend/internals/features/college/timetable/grid"
	timetableRepo "college_backend/internals/features/college/timetable/repository"
	timetableService "college_backend/internals/features/college/timetable/service"
	helper "college_backend/internals/helpers"
	"college_backend/internals/helpers/applog"
	"college_backend/internals/helpers/llm"
	middlewares "college_backend/internals/middlewares"
	routes "college_backend/internals/route"
	"college_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	logger, err := applog.New(configs.LogLevel, configs.LogFormat)
	if err != nil {
		log.Fatalf("❌ logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ErrorHandler:            helper.ErrorHandler,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          configs.GetEnvList("TRUSTED_PROXIES", []string{"0.0.0.0/0"}),
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timeout guard (matches statement_timeout in the DSN)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("requestid", id)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	middlewares.SetupMiddlewares(app)

	// DB connect + pool
	db, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	database.TunePool(db)

	if configs.GetEnv("SEED_ON_START") == "true" {
		seeds.RunAllSeeds(db, configs.GetEnv("SEED_FILE"))
	}

	dims := grid.Dimensions{
		Semesters: configs.TimetableSemesters,
		Sections:  configs.TimetableSections,
		Days:      configs.TimetableDays,
		Periods:   configs.TimetablePeriods,
	}

	// The Gemini client is optional at boot; /api/query answers 502 without it.
	var gen personalService.TextGenerator = llm.Unconfigured{}
	if gc, err := llm.NewGeminiClient(context.Background(), configs.GeminiAPIKey, configs.GeminiModel); err != nil {
		logger.Warn("gemini client unavailable", zap.Error(err))
	} else {
		gen = gc
	}

	entryStore := personalRepo.NewPersonalTimetableStore(db)
	routes.SetupRoutes(app, routes.Deps{
		DB:               db,
		JWTSecret:        configs.JWTSecret,
		Timetable:        timetableService.NewTimetableService(timetableRepo.NewTimetableStore(db), dims, grid.FirstSection, logger.Named("timetable")),
		Entries:          personalService.NewEntryService(entryStore),
		Query:            personalService.NewQueryService(entryStore, gen, logger.Named("query")),
		QueryRatePerMin:  configs.GetEnvInt("QUERY_RATE_PER_MIN", 10),
		CheckActiveUsers: configs.GetEnv("AUTH_CHECK_ACTIVE_USER") == "true",
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "8000")

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + close DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if err := database.Close(db); err != nil {
		log.Printf("db close: %v", err)
	}
}
