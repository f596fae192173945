package app

import (
	"context"
	"fmt"
	"log"
	"mindset_backend/internal/config"
	"mindset_backend/internal/controller"
	"mindset_backend/internal/repository"
	"mindset_backend/internal/service"
	"mindset_backend/internal/util"
	"mindset_backend/pkg/configwatcher"
	"mindset_backend/pkg/database"
	"mindset_backend/pkg/logger"
	"mindset_backend/pkg/monitoring"
	"mindset_backend/pkg/security"
	"mindset_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
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
	Store           repository.KeyValueStore
	services        *services
	tracer          *sdktrace.TracerProvider
	limiter         *security.RateLimiter
	configCallbacks []func(*config.Config)
}

type services struct {
	repo          *repository.StateRepository
	catalog       *service.CatalogService
	progress      *service.ProgressService
	stats         *service.StatsService
	wizard        *service.WizardService
	storage       *service.StorageService
	export        *service.ExportService
	auth          *service.AuthService
	hub           *service.PushHub
	notifications *service.NotificationService
}

type controllers struct {
	state        *controller.StateController
	module       *controller.ModuleController
	journal      *controller.JournalController
	goal         *controller.GoalController
	wizard       *controller.WizardController
	export       *controller.ExportController
	notification *controller.NotificationController
	auth         *controller.AuthController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// OpenStore 按 storage.driver 打开保存状态的键值存储
func OpenStore(cfg *config.Config) (repository.KeyValueStore, error) {
	switch cfg.Storage.Driver {
	case util.StoreBadger, "":
		db, err := database.InitBadger(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		return repository.NewBadgerStore(db), nil
	case util.StoreSQL:
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return repository.NewSQLStore(db), nil
	case util.StoreRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisStore(rdb, "mindset:"), nil
	case util.StoreMemory:
		return repository.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
}

func (a *App) initServices(cfg *config.Config, store repository.KeyValueStore) (*services, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	catalog, err := service.NewCatalogService(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	s := &services{catalog: catalog}
	s.repo = repository.NewStateRepository(store, cfg.Storage.StateKey)
	s.progress = service.NewProgressService(s.repo, catalog, loc)
	s.stats = service.NewStatsService(s.repo, catalog, loc)
	s.wizard = service.NewWizardService(
		s.progress,
		catalog,
		loc,
		time.Duration(cfg.App.MinReadingSeconds)*time.Second,
		cfg.SessionIdleTimeout(),
	)
	s.storage = service.NewStorageService(cfg)
	s.export = service.NewExportService(s.repo, s.storage, loc)
	s.auth = service.NewAuthService(cfg)

	// 页面可见性事件暂停阅读计时
	s.hub = service.NewPushHub()
	s.hub.OnVisibility = func(sessionID string, visible bool) {
		if _, err := s.wizard.SetVisible(sessionID, visible); err != nil {
			logger.Log.Debug("Visibility event ignored", zap.String("sessionId", sessionID), zap.Error(err))
		}
	}

	notifiers := []service.Notifier{service.LogNotifier{}, s.hub}
	line, err := service.NewLineNotifier(cfg.Line)
	if err != nil {
		logger.Log.Warn("LINE notifier disabled", zap.Error(err))
	} else if line != nil {
		notifiers = append(notifiers, line)
	}
	s.notifications = service.NewNotificationService(s.repo, loc, cfg.ReminderPollInterval(), notifiers...)

	return s, nil
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		state:        controller.NewStateController(s.progress, s.catalog),
		module:       controller.NewModuleController(s.catalog, s.progress, s.wizard),
		journal:      controller.NewJournalController(s.stats, s.progress),
		goal:         controller.NewGoalController(s.progress, s.stats),
		wizard:       controller.NewWizardController(s.wizard),
		export:       controller.NewExportController(s.export),
		notification: controller.NewNotificationController(s.notifications, s.hub, s.auth),
		auth:         controller.NewAuthController(s.auth),
		health:       controller.NewHealthController(a.Store, a.Config.Storage.StateKey, s.wizard),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS))
	router.Use(security.Secure())

	if a.limiter = security.NewRateLimiter(cfg.RateLimit); a.limiter != nil {
		router.Use(a.limiter.Middleware())
	}

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New 使用给定的存储组装应用，不启动后台任务
func New(cfg *config.Config, store repository.KeyValueStore) (*App, error) {
	app := &App{
		Config: cfg,
		Store:  store,
	}

	s, err := app.initServices(cfg, store)
	if err != nil {
		return nil, err
	}
	app.services = s
	c := app.initControllers(s)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, c, cfg)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetLevel(newCfg)
		s.notifications.SetInterval(newCfg.ReminderPollInterval())
	})
	return app, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 监控初始化
	monitoring.Init()

	store, err := OpenStore(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to open state store", zap.Error(err), zap.String("driver", cfg.Storage.Driver))
	}
	logger.Log.Info("State store opened", zap.String("driver", cfg.Storage.Driver))

	app, err := New(cfg, store)
	if err != nil {
		logger.Log.Fatal("Failed to initialize app", zap.Error(err))
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("mindset-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

// startBackgroundTasks 启动推送、会话回收、提醒轮询和配置监听，ctx 取消时全部退出
func (a *App) startBackgroundTasks(ctx context.Context) *sync.WaitGroup {
	s := a.services
	var wg sync.WaitGroup
	tasks := []func(){
		func() { s.hub.Run(ctx) },
		func() { s.wizard.Run(ctx) },
		func() { s.notifications.Run(ctx) },
	}
	if a.limiter != nil {
		tasks = append(tasks, func() { a.limiter.Run(ctx) })
	}
	for _, task := range tasks {
		wg.Add(1)
		go func(run func()) {
			defer wg.Done()
			run()
		}(task)
	}

	go func() {
		err := configwatcher.WatchConfig(ctx, a.Config.Dir, func(newCfg *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(newCfg)
			}
		})
		if err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}()
	return &wg
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := a.startBackgroundTasks(ctx)

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

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	// 关闭推送连接并结算进行中的会话
	cancel()
	wg.Wait()

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if err := a.Store.Close(); err != nil {
		logger.Log.Error("Failed to close state store", zap.Error(err))
	}

	logger.Log.Info("Server exiting")
}
