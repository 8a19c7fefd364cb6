package app

import (
	"academic_dashboard/internal/config"
	"academic_dashboard/internal/controller"
	"academic_dashboard/internal/repository"
	"academic_dashboard/internal/service"
	"academic_dashboard/pkg/configwatcher"
	"academic_dashboard/pkg/database"
	"academic_dashboard/pkg/kvstore"
	"academic_dashboard/pkg/logger"
	"academic_dashboard/pkg/monitoring"
	"academic_dashboard/pkg/security"
	"academic_dashboard/pkg/tracing"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Store           kvstore.Store
	closeStore      func() error
	tracer          *sdktrace.TracerProvider
	services        *services
	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	marker        *repository.MarkerRepository
	assignment    *repository.AssignmentRepository
	event         *repository.ClubEventRepository
	achievement   *repository.AchievementRepository
	feedback      *repository.FeedbackRepository
	submission    *repository.SubmissionRepository
	studentRecord *repository.StudentRecordRepository
	activity      *repository.ActivityRepository
}

type services struct {
	session      *service.SessionService
	notification *service.NotificationService
	activity     *service.ActivityService
	assignment   *service.AssignmentService
	event        *service.ClubEventService
	achievement  *service.AchievementService
	feedback     *service.FeedbackService
	submission   *service.SubmissionService
	storage      *service.StorageService
	insight      *service.InsightService
	performance  *service.PerformanceService
	dataset      *service.DatasetService
	dashboard    *service.DashboardService
}

type controllers struct {
	session      *controller.SessionController
	assignment   *controller.AssignmentController
	event        *controller.ClubEventController
	achievement  *controller.AchievementController
	feedback     *controller.FeedbackController
	submission   *controller.SubmissionController
	performance  *controller.PerformanceController
	dataset      *controller.DatasetController
	attachment   *controller.AttachmentController
	insight      *controller.InsightController
	notification *controller.NotificationController
	dashboard    *controller.DashboardController
	health       *controller.HealthController
}

// RegisterConfigCallback queues callback to run on every config reload.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	a.configCallbacks = append(a.configCallbacks, callback)
	a.mu.Unlock()
}

// ReloadConfig applies a freshly loaded config to the hot-reloadable parts
// of the running app.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(store kvstore.Store) *repositories {
	return &repositories{
		marker:        repository.NewMarkerRepository(store),
		assignment:    repository.NewAssignmentRepository(store),
		event:         repository.NewClubEventRepository(store),
		achievement:   repository.NewAchievementRepository(store),
		feedback:      repository.NewFeedbackRepository(store),
		submission:    repository.NewSubmissionRepository(store),
		studentRecord: repository.NewStudentRecordRepository(store),
		activity:      repository.NewActivityRepository(store),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, store kvstore.Store) *services {
	s := &services{}

	s.session = service.NewSessionService(store, &cfg.JWT)
	s.storage = service.NewStorageService(&cfg.Storage)
	s.activity = service.NewActivityService(repos.activity)

	s.notification = service.NewNotificationService(store, repos.assignment, repos.event)
	s.notification.SetPollInterval(cfg.Notifications.PollInterval)

	s.assignment = service.NewAssignmentService(repos.assignment, s.notification, s.activity)
	s.event = service.NewClubEventService(repos.event, s.notification, s.activity)
	s.achievement = service.NewAchievementService(repos.achievement)
	s.feedback = service.NewFeedbackService(repos.feedback)
	s.submission = service.NewSubmissionService(repos.submission, s.activity)

	s.insight = service.NewInsightService(cfg.AI)
	s.performance = service.NewPerformanceService(repos.studentRecord, repos.marker, s.insight, cfg.Insights.WeakThreshold)
	s.dataset = service.NewDatasetService(repos.studentRecord, repos.marker, s.activity, s.storage)
	s.dashboard = service.NewDashboardService(repos.submission, s.dataset, s.activity, s.notification)

	return s
}

func (a *App) initControllers(s *services, store kvstore.Store) *controllers {
	return &controllers{
		session:      controller.NewSessionController(s.session),
		assignment:   controller.NewAssignmentController(s.assignment, s.notification),
		event:        controller.NewClubEventController(s.event, s.notification),
		achievement:  controller.NewAchievementController(s.achievement),
		feedback:     controller.NewFeedbackController(s.feedback),
		submission:   controller.NewSubmissionController(s.submission),
		performance:  controller.NewPerformanceController(s.performance),
		dataset:      controller.NewDatasetController(s.dataset),
		attachment:   controller.NewAttachmentController(s.storage),
		insight:      controller.NewInsightController(s.insight),
		notification: controller.NewNotificationController(s.notification),
		dashboard:    controller.NewDashboardController(s.dashboard, s.activity),
		health:       controller.NewHealthController(store, a.Config.Store.Driver),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	// the insight proxy is called straight from browsers on any origin
	router.Use(security.CORS(cfg.CORS.AllowedOrigins, "/api/insights"))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// registerReloadables wires the settings that may change without a restart.
func (a *App) registerReloadables(s *services) {
	a.RegisterConfigCallback(func(cfg *config.Config) {
		s.insight.UpdateConfig(cfg.AI)
	})
	a.RegisterConfigCallback(func(cfg *config.Config) {
		if cfg.Notifications.PollInterval > 0 {
			s.notification.SetPollInterval(cfg.Notifications.PollInterval)
		}
	})
}

// build assembles the app on top of an already opened store.
func build(cfg *config.Config, store kvstore.Store, router *gin.Engine) *App {
	app := &App{
		Config: cfg,
		Router: router,
		Store:  store,
	}

	repos := app.initRepositories(store)
	services := app.initServices(repos, cfg, store)
	app.services = services
	controllers := app.initControllers(services, store)

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)
	app.registerReloadables(services)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	store, closeStore, err := database.OpenStore(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to open store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := build(cfg, store, gin.Default())
	app.closeStore = closeStore

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.CollectorEndpoint, cfg.Server.Mode)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

// Run serves until SIGINT or SIGTERM, reloading configDir on change.
func (a *App) Run(configDir string) {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go func() {
		configFile := filepath.Join(configDir, "config.yaml")
		if err := configwatcher.WatchConfig(watchCtx, configFile, a.ReloadConfig); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}()

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if a.closeStore != nil {
		if err := a.closeStore(); err != nil {
			logger.Log.Error("Failed to close store", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
}
