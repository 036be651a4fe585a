package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hygia-health/hygia-api/internal/api/handler"
	"github.com/hygia-health/hygia-api/internal/api/middleware"
	"github.com/hygia-health/hygia-api/internal/core/domain"
	"github.com/hygia-health/hygia-api/internal/core/ports"
	"github.com/hygia-health/hygia-api/internal/core/service"
	mongodb "github.com/hygia-health/hygia-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hygia-health/hygia-api/internal/infrastructure/db/redis"
	"github.com/hygia-health/hygia-api/internal/infrastructure/memory"
)

// Deps carries everything the router needs to assemble the application.
type Deps struct {
	Mongo       *mongo.Database
	Redis       *redis.Client
	Notifier    ports.ChangeNotifier
	Credentials ports.CredentialDirectory
	Patients    ports.PatientDirectory
	JWTSecret   string
	SessionTTL  time.Duration
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hygia"))

	// --- Dependencies ---
	nav := domain.DefaultNavigationMap()
	sessions := redisdb.NewSessionStore(deps.Redis, deps.SessionTTL)
	rosterRepo := mongodb.NewRosterRepository(deps.Mongo)

	if deps.Patients == nil {
		deps.Patients = memory.NewPatientDirectory(memory.DefaultSeedPatients())
	}

	authService := service.NewAuthService(deps.Credentials, sessions, nav, deps.JWTSecret, deps.SessionTTL, deps.Logger)
	navService := service.NewNavigationService(nav)
	patientService := service.NewPatientService(deps.Patients, deps.Logger)
	recordService := service.NewRecordService(deps.Patients, deps.Logger)
	rosterService := service.NewRosterService(rosterRepo, deps.Notifier, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	navHandler := handler.NewNavigationHandler(navService)
	patientHandler := handler.NewPatientHandler(patientService)
	recordHandler := handler.NewRecordHandler(recordService)
	rosterHandler := handler.NewRosterHandler(rosterService)

	guard := middleware.Guard(deps.JWTSecret, sessions, nav)

	// --- Auth routes (the guard never runs on login) ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/logout", authHandler.Logout, guard)
	e.GET("/v1/auth/session", authHandler.Session, guard)

	// --- Navigation ---
	e.GET("/v1/navigation", navHandler.Menu, guard)

	// --- Admission module ---
	e.GET("/v1/patients", patientHandler.List, guard,
		middleware.RBAC(domain.RoleRecepcionista, domain.RoleMedico))
	e.POST("/v1/patients", patientHandler.Create, guard,
		middleware.RBAC(domain.RoleRecepcionista))

	// --- Clinical record module ---
	e.GET("/v1/records", recordHandler.Get, guard,
		middleware.RBAC(domain.RoleMedico))
	e.POST("/v1/records/:id/notes", recordHandler.SaveNote, guard,
		middleware.RBAC(domain.RoleMedico))

	// --- Roster module (per-user, any authenticated role) ---
	roster := e.Group("/v1/roster", guard)
	roster.GET("/:kind", rosterHandler.List)
	roster.POST("/:kind", rosterHandler.Create)
	roster.PUT("/:kind/:id", rosterHandler.Update)
	roster.DELETE("/:kind/:id", rosterHandler.Delete)
	roster.GET("/:kind/watch", rosterHandler.Watch)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
