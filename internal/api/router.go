package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/localekit/localization-system/internal/api/handler"
	"github.com/localekit/localization-system/internal/api/middleware"
	"github.com/localekit/localization-system/internal/core/ports"
	"github.com/localekit/localization-system/internal/core/service"
	"github.com/localekit/localization-system/internal/infrastructure/config"
	mongodb "github.com/localekit/localization-system/internal/infrastructure/db/mongo"
	redisdb "github.com/localekit/localization-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The activity recorder is owned by the caller so its worker lifecycle
// outlives individual requests.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, recorder ports.ActivityRecorder) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("localization"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	termRepo := mongodb.NewTermRepository(db)
	translationRepo := mongodb.NewTranslationRepository(db)
	localeRepo := mongodb.NewLocaleRepository(db)
	labelRepo := mongodb.NewLabelRepository(db)
	membershipRepo := mongodb.NewMembershipRepository(db)
	keyRepo := mongodb.NewAPIKeyRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	keyCache := redisdb.NewAPIKeyCache(rdb, keyRepo, cfg.Redis.KeyCacheTTL)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	actorBuilder := service.NewActorBuilder(projectRepo, membershipRepo, log)
	projectService := service.NewProjectService(projectRepo, activityRepo, recorder, log)
	termService := service.NewTermService(termRepo, labelRepo, recorder, log)
	translationService := service.NewTranslationService(termRepo, localeRepo, translationRepo, recorder, log)
	localeService := service.NewLocaleService(localeRepo, recorder, log)
	labelService := service.NewLabelService(labelRepo, recorder, log)
	memberService := service.NewMemberService(projectRepo, membershipRepo, userRepo, recorder, log)
	keyService := service.NewAPIKeyService(keyRepo, keyCache, recorder, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	termHandler := handler.NewTermHandler(termService)
	translationHandler := handler.NewTranslationHandler(translationService)
	localeHandler := handler.NewLocaleHandler(localeService)
	labelHandler := handler.NewLabelHandler(labelService)
	memberHandler := handler.NewMemberHandler(memberService)
	keyHandler := handler.NewAPIKeyHandler(keyService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret, keyCache))

	v1.POST("/projects", projectHandler.Create)
	v1.GET("/projects", projectHandler.List)

	// Everything below is project-scoped: the actor is resolved once here.
	p := v1.Group("/projects/:projectID", middleware.ProjectActor(actorBuilder))

	p.GET("", projectHandler.Get)
	p.PATCH("", projectHandler.Rename)
	p.DELETE("", projectHandler.Delete)
	p.GET("/activity", projectHandler.Activity)

	p.POST("/terms", termHandler.Create)
	p.GET("/terms", termHandler.List)
	p.POST("/terms/lock-all", termHandler.LockAll)
	p.POST("/terms/unlock-all", termHandler.UnlockAll)
	p.PATCH("/terms/:termID", termHandler.Update)
	p.DELETE("/terms/:termID", termHandler.Delete)
	p.POST("/terms/:termID/lock", termHandler.Lock)
	p.DELETE("/terms/:termID/lock", termHandler.Unlock)
	p.PUT("/terms/:termID/labels", termHandler.SetLabels)

	p.PUT("/translations/:termID/:locale", translationHandler.Upsert)
	p.GET("/translations/:locale", translationHandler.ListByLocale)

	p.POST("/locales", localeHandler.Add)
	p.GET("/locales", localeHandler.List)
	p.DELETE("/locales/:code", localeHandler.Delete)

	p.POST("/labels", labelHandler.Create)
	p.GET("/labels", labelHandler.List)
	p.PATCH("/labels/:labelID", labelHandler.Update)
	p.DELETE("/labels/:labelID", labelHandler.Delete)

	p.GET("/users", memberHandler.List)
	p.POST("/users", memberHandler.Invite)
	p.PATCH("/users/:userID", memberHandler.Update)
	p.DELETE("/users/:userID", memberHandler.Remove)

	p.GET("/keys", keyHandler.List)
	p.POST("/keys", keyHandler.Create)
	p.DELETE("/keys/:keyID", keyHandler.Revoke)

	return e
}
