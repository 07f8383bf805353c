package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sanvii_backend/internal/config"
	"sanvii_backend/internal/controller"
	"sanvii_backend/internal/repository"
	"sanvii_backend/internal/service"
	"sanvii_backend/internal/store"
	"sanvii_backend/pkg/database"
	"sanvii_backend/pkg/logger"
	"sanvii_backend/pkg/monitoring"
	"sanvii_backend/pkg/security"
	"sanvii_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user      *repository.UserRepository
	profile   *repository.ProfileRepository
	message   *repository.MessageRepository
	path      *repository.PathRepository
	topicChat *repository.TopicChatRepository
	resume    *repository.ResumeRepository
	session   *repository.SessionRepository
}

type services struct {
	gemini    *service.GeminiService
	storage   *service.StorageService
	auth      *service.AuthService
	profile   *service.ProfileService
	chat      *service.ChatService
	path      *service.LearningPathService
	lesson    *service.LessonService
	job       *service.JobService
	resume    *service.ResumeService
	interview *service.InterviewService
	dashboard *service.DashboardService
}

type controllers struct {
	auth      *controller.AuthController
	profile   *controller.ProfileController
	chat      *controller.ChatController
	path      *controller.LearningPathController
	lesson    *controller.LessonController
	job       *controller.JobController
	resume    *controller.ResumeController
	interview *controller.InterviewController
	dashboard *controller.DashboardController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(kv store.KV) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(kv),
		profile:   repository.NewProfileRepository(kv),
		message:   repository.NewMessageRepository(kv),
		path:      repository.NewPathRepository(kv),
		topicChat: repository.NewTopicChatRepository(kv),
		resume:    repository.NewResumeRepository(kv),
		session:   repository.NewSessionRepository(kv),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	gemini, err := service.NewGeminiService(cfg.AI)
	if err != nil {
		logger.Log.Fatal("Failed to initialize AI gateway", zap.Error(err))
	}
	s.gemini = gemini

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.profile, repos.session, cfg)
	s.profile = service.NewProfileService(repos.profile)
	s.chat = service.NewChatService(repos.message, s.profile, s.gemini)
	s.path = service.NewLearningPathService(repos.path, s.profile, s.gemini)
	s.lesson = service.NewLessonService(repos.topicChat, s.path, s.profile, s.gemini)
	s.job = service.NewJobService(s.profile, s.gemini)
	s.resume = service.NewResumeService(repos.resume, s.gemini, s.storage)
	s.interview = service.NewInterviewService(s.gemini, s.profile)
	s.dashboard = service.NewDashboardService(s.profile, s.path, s.chat, s.lesson, s.resume)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		profile:   controller.NewProfileController(s.profile),
		chat:      controller.NewChatController(s.chat),
		path:      controller.NewLearningPathController(s.path),
		lesson:    controller.NewLessonController(s.lesson),
		job:       controller.NewJobController(s.job),
		resume:    controller.NewResumeController(s.resume),
		interview: controller.NewInterviewController(s.interview),
		dashboard: controller.NewDashboardController(s.dashboard),
		health:    controller.NewHealthController(a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		Redis:  rdb,
	}

	repos := app.initRepositories(store.NewRedisKV(rdb))
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("sanvii-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
