package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/notas-claras/agenda-api/api/swagger"
	"github.com/notas-claras/agenda-api/internal/handler"
	"github.com/notas-claras/agenda-api/internal/middleware"
	"github.com/notas-claras/agenda-api/internal/repository"
	"github.com/notas-claras/agenda-api/internal/service"
	"github.com/notas-claras/agenda-api/pkg/cache"
	"github.com/notas-claras/agenda-api/pkg/config"
	"github.com/notas-claras/agenda-api/pkg/database"
	"github.com/notas-claras/agenda-api/pkg/logger"
	corsmiddleware "github.com/notas-claras/agenda-api/pkg/middleware/cors"
	reqidmiddleware "github.com/notas-claras/agenda-api/pkg/middleware/requestid"
)

// @title Agenda API
// @version 1.0.0
// @description Backend for the Notas Claras student agenda
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, dashboard caching disabled", zap.Error(err))
		redisClient = nil
	}

	validate := validator.New()

	homeworkRepo := repository.NewHomeworkRepository(db)
	examRepo := repository.NewExamRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	professorRepo := repository.NewProfessorRepository(db)
	userRepo := repository.NewUserRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, cfg.Dashboard.CacheEnabled)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "agenda-api",
	})
	userSvc := service.NewUserService(userRepo, validate, logr)
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Homework: homeworkRepo,
		Exams:    examRepo,
		Cache:    cacheSvc,
		Logger:   logr,
		Config:   service.DashboardServiceConfig{CacheTTL: cfg.Dashboard.CacheTTL},
	})
	homeworkSvc := service.NewHomeworkService(homeworkRepo, validate, logr, dashboardSvc)
	examSvc := service.NewExamService(examRepo, validate, logr, dashboardSvc)
	subjectSvc := service.NewSubjectService(subjectRepo, professorRepo, validate, logr)
	professorSvc := service.NewProfessorService(professorRepo, validate, logr)
	searchSvc := service.NewSearchService(cfg.Search.FuzzyThreshold, logr)
	calendarSvc := service.NewCalendarService(homeworkRepo, examRepo, subjectRepo, logr)
	exportSvc := service.NewExportService(homeworkRepo, examRepo, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	homeworkHandler := handler.NewHomeworkHandler(homeworkSvc)
	examHandler := handler.NewExamHandler(examSvc)
	subjectHandler := handler.NewSubjectHandler(subjectSvc)
	professorHandler := handler.NewProfessorHandler(professorSvc)
	searchHandler := handler.NewSearchHandler(homeworkRepo, examRepo, searchSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	calendarHandler := handler.NewCalendarHandler(calendarSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", middleware.JWT(authSvc), authHandler.Logout)

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))

	protected.GET("/profile", userHandler.Profile)
	protected.PUT("/profile", userHandler.UpdateProfile)

	protected.GET("/homework", homeworkHandler.List)
	protected.POST("/homework", homeworkHandler.Create)
	protected.GET("/homework/:id", homeworkHandler.Get)
	protected.PATCH("/homework/:id", homeworkHandler.Update)
	protected.PATCH("/homework/:id/toggle", homeworkHandler.Toggle)
	protected.DELETE("/homework/:id", homeworkHandler.Delete)

	protected.GET("/exams", examHandler.List)
	protected.POST("/exams", examHandler.Create)
	protected.GET("/exams/:id", examHandler.Get)
	protected.PATCH("/exams/:id", examHandler.Update)
	protected.PATCH("/exams/:id/toggle", examHandler.Toggle)
	protected.DELETE("/exams/:id", examHandler.Delete)

	protected.GET("/subjects", subjectHandler.List)
	protected.POST("/subjects", subjectHandler.Create)
	protected.GET("/subjects/:id", subjectHandler.Get)
	protected.PATCH("/subjects/:id", subjectHandler.Update)
	protected.DELETE("/subjects/:id", subjectHandler.Delete)

	protected.GET("/professors", professorHandler.List)
	protected.POST("/professors", professorHandler.Create)
	protected.GET("/professors/:id", professorHandler.Get)
	protected.PATCH("/professors/:id", professorHandler.Update)
	protected.DELETE("/professors/:id", professorHandler.Delete)

	protected.GET("/search", searchHandler.Search)
	protected.GET("/dashboard", dashboardHandler.Summary)
	protected.GET("/calendar/day", calendarHandler.Day)
	protected.GET("/calendar/:year/:month", calendarHandler.Month)
	protected.GET("/export/agenda", exportHandler.Agenda)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
