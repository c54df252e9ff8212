// @title Course Planner API
// @version 1.0
// @description Plans short courses with Gemini: class names, day-by-day curricula, promotion copy, infographics and Google Forms registration.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "course-planner/cmd/api/docs"
	"course-planner/internal/adapter"
	"course-planner/internal/adapter/forms"
	"course-planner/internal/adapter/imagegen"
	"course-planner/internal/adapter/textgen"
	"course-planner/internal/cache"
	"course-planner/internal/config"
	"course-planner/internal/database"
	"course-planner/internal/domain"
	"course-planner/internal/handler"
	"course-planner/internal/logger"
	"course-planner/internal/metrics"
	"course-planner/internal/middleware"
	"course-planner/internal/repository"
	"course-planner/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Text generation
	model, err := textgen.NewGoogleAIModel(ctx, cfg.Gemini.APIKey, cfg.Gemini.TextModel)
	if err != nil {
		appLogger.Fatal("Failed to create Gemini text model", zap.Error(err))
	}
	textGenerator := textgen.NewGeminiTextGenerator(model, cfg.Gemini.Timeout, m)

	// Image generation; a failure here only disables real images.
	var imageGenerator domain.ImageGenerator
	genaiClient, err := imagegen.NewClient(ctx, cfg.Gemini.APIKey)
	if err != nil {
		appLogger.Error("Image generation disabled", zap.Error(err))
	} else {
		providers, err := imagegen.NewProviders(genaiClient, cfg.Gemini.ImageProviders, cfg.Gemini.ImageModel, cfg.Gemini.InlineModel)
		if err != nil {
			appLogger.Error("Image generation disabled", zap.Error(err))
		} else {
			imageGenerator = imagegen.NewChain(providers...)
		}
	}

	// Storage
	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	courseRepository := repository.NewCourseDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("RedisCacheAdapter initialized")

	// Services
	generationService := service.NewGenerationService(textGenerator, imageGenerator, m, service.GenerationOptions{
		MaxImageWorkers: cfg.Generation.MaxConcurrentImages,
	})
	courseService := service.NewCourseService(courseRepository, txManager, cacheAdapter,
		cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Course, 10*time.Minute), m)
	formsClient := forms.NewGoogleFormsClient("", &http.Client{Timeout: cfg.Forms.Timeout})
	formService := service.NewFormService(formsClient, courseService, cfg.Google, cfg.Forms, m)

	// Handlers
	generationHandler := handler.NewGenerationHandler(generationService)
	courseHandler := handler.NewCourseHandler(courseService)
	scheduleHandler := handler.NewScheduleHandler()
	formHandler := handler.NewFormHandler(formService)
	validationMiddleware := middleware.NewValidationMiddleware()

	limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, m)
	stopCleanup := make(chan struct{})
	go limiter.Run(time.Minute, stopCleanup)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		status := fiber.Map{"status": "ok"}
		if err := db.PingContext(pingCtx); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
		}
		if err := cacheAdapter.Ping(pingCtx); err != nil {
			status["status"] = "degraded"
			status["redis"] = err.Error()
		}
		return c.JSON(status)
	})

	apiGroup := app.Group("/api")

	generateGroup := apiGroup.Group("/generate", limiter.Handler())
	generateGroup.Post("/class-names", generationHandler.GenerateClassNames)
	generateGroup.Post("/curriculum", generationHandler.GenerateCurriculum)
	generateGroup.Post("/course", generationHandler.GenerateCourse)
	generateGroup.Post("/promotion", generationHandler.GeneratePromotion)
	generateGroup.Post("/infographic", generationHandler.GenerateInfographic)
	generateGroup.Post("/infographics", generationHandler.GenerateInfographics)

	apiGroup.Post("/schedule", scheduleHandler.BuildSchedule)

	courseGroup := apiGroup.Group("/courses")
	courseGroup.Get("/", courseHandler.ListCourses)
	courseGroup.Post("/", courseHandler.CreateCourse)
	courseGroup.Get("/:id", validationMiddleware.ValidateCourseID(), courseHandler.GetCourse)
	courseGroup.Put("/:id", validationMiddleware.ValidateCourseID(), courseHandler.UpdateCourse)
	courseGroup.Delete("/:id", validationMiddleware.ValidateCourseID(), courseHandler.DeleteCourse)

	formGroup := apiGroup.Group("/forms")
	formGroup.Get("/auth-url", formHandler.AuthURL)
	formGroup.Post("/export", limiter.Handler(), formHandler.Export)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	close(stopCleanup)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
