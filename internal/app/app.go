package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"learner_insights_backend/internal/config"
	"learner_insights_backend/internal/controller"
	"learner_insights_backend/internal/repository"
	"learner_insights_backend/internal/service"
	"learner_insights_backend/internal/util"
	"learner_insights_backend/pkg/configwatcher"
	"learner_insights_backend/pkg/database"
	"learner_insights_backend/pkg/logger"
	"learner_insights_backend/pkg/monitoring"
	"learner_insights_backend/pkg/security"
	"learner_insights_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	ConfigPath      string
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
	tracer          *sdktrace.TracerProvider
	cancel          context.CancelFunc
}

type repositories struct {
	feature     *repository.FeatureRepository
	prediction  *repository.PredictionRepository
	alert       *repository.AlertRepository
	roadmap     *repository.RoadmapRepository
	quizSession *repository.QuizSessionRepository
	quizResult  *repository.QuizResultRepository
}

type services struct {
	prediction  *service.PredictionService
	scheduler   *service.PredictionScheduler
	alert       *service.AlertService
	alertHub    *service.AlertHub
	insights    *service.InsightsService
	roadmap     *service.RoadmapService
	quizSession *service.QuizSessionService
}

type controllers struct {
	health      *controller.HealthController
	insights    *controller.InsightsController
	prediction  *controller.PredictionController
	alert       *controller.AlertController
	roadmap     *controller.RoadmapController
	quizSession *controller.QuizSessionController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		feature:     repository.NewFeatureRepository(db),
		prediction:  repository.NewPredictionRepository(db),
		alert:       repository.NewAlertRepository(db),
		roadmap:     repository.NewRoadmapRepository(db),
		quizSession: repository.NewQuizSessionRepository(rdb),
		quizResult:  repository.NewQuizResultRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.alertHub = service.NewAlertHub(rdb, cfg.Notification.AlertChannel, cfg.CORS.AllowedOrigins)
	archive := service.NewReportArchive(service.NewStorageProvider(&cfg.Storage))

	s.prediction = service.NewPredictionService(
		repos.feature,
		repos.prediction,
		repos.alert,
		s.alertHub,
		archive,
		cfg.Prediction,
	)
	s.scheduler = service.NewPredictionScheduler(s.prediction)
	s.alert = service.NewAlertService(repos.alert)
	s.insights = service.NewInsightsService(repos.prediction)
	s.roadmap = service.NewRoadmapService(repos.roadmap)
	s.quizSession = service.NewQuizSessionService(repos.quizSession, repos.quizResult, cfg.Quiz)

	// 预测参数支持热更新，其余配置需要重启
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		s.prediction.UpdateSettings(newCfg.Prediction)
		logger.Log.Info("Prediction settings reloaded",
			zap.String("modelVersion", newCfg.Prediction.ModelVersion),
			zap.Bool("batchEnabled", newCfg.Prediction.BatchEnabled),
		)
	})

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		health:      controller.NewHealthController(db, rdb),
		insights:    controller.NewInsightsController(s.insights),
		prediction:  controller.NewPredictionController(s.prediction),
		alert:       controller.NewAlertController(s.alert, s.alertHub),
		roadmap:     controller.NewRoadmapController(s.roadmap),
		quizSession: controller.NewQuizSessionController(s.quizSession),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute, "/metrics", "/api/health", "/swagger"))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(ctx context.Context, s *services) {
	go s.alertHub.Run(ctx)
	go s.scheduler.Run(ctx)

	if a.ConfigPath == "" {
		return
	}
	go func() {
		err := configwatcher.WatchConfig(ctx, a.ConfigPath, func(newCfg *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(newCfg)
			}
		})
		if err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

// NewApp configDir 为空时不监听配置文件变化
func NewApp(cfg *config.Config, configDir string) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.ForceMigrate || cfg.Server.Mode == "debug" {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}
	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	app.Redis = rdb
	if configDir != "" {
		app.ConfigPath = filepath.Join(configDir, "config.yaml")
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("learner-insights", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	ctx, cancel := context.WithCancel(context.Background())
	app.cancel = cancel
	app.startBackgroundTasks(ctx, services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// 停止调度、配置监听，并断开所有预警推送连接
	if a.cancel != nil {
		a.cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	logger.Log.Info("Server exiting")
}
