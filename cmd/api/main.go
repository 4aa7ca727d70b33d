package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"vidtube/internal/api/handler"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/router"
	"vidtube/internal/config"
	"vidtube/internal/infra/database"
	infraES "vidtube/internal/infra/elasticsearch"
	infraKafka "vidtube/internal/infra/kafka"
	infraMinio "vidtube/internal/infra/minio"
	infraRedis "vidtube/internal/infra/redis"
	"vidtube/internal/media"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	_ "vidtube/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title VidTube API
// @version 1.0
// @description 视频分享平台 API 服务
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@vidtube.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 自动迁移数据库表
	if err := database.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Like{},
		&model.Tweet{},
		&model.Playlist{},
		&model.PlaylistVideo{},
		&model.Subscription{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化Redis
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	// 初始化MinIO
	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	// 初始化Kafka生产者
	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	// 初始化 Elasticsearch（可选，失败则搜索降级到 DB）
	esAvailable := true
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		esAvailable = false
		logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
	} else {
		defer infraES.Close()
		if err := infraES.InitIndexes(); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()

	// 使用自定义中间件
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	uploader := media.NewMinIOUploader(&cfg.MinIO)

	// 视频生命周期事件发到 Kafka，由搜索索引 worker 消费
	var publishEvent service.EventPublisher
	if topic, ok := cfg.Kafka.Topics["video_events"]; ok {
		publishEvent = func(ctx context.Context, event *infraKafka.VideoEvent) error {
			return infraKafka.SendVideoEvent(ctx, topic, event)
		}
	}

	var searchFn service.SearchFunc
	if esAvailable {
		searchFn = infraES.SearchVideos
	}

	authService := service.NewAuthService(userRepo, uploader)
	userService := service.NewUserService(userRepo, subscriptionRepo, uploader)
	videoService := service.NewVideoService(videoRepo, likeRepo, uploader, publishEvent, searchFn)
	commentService := service.NewCommentService(commentRepo, videoRepo)
	likeService := service.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	tweetService := service.NewTweetService(tweetRepo, userRepo)
	playlistService := service.NewPlaylistService(playlistRepo, videoRepo, userRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo)
	dashboardService := service.NewDashboardService(statsRepo, videoRepo, userRepo, infraRedis.Get())

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	videoHandler := handler.NewVideoHandler(videoService)
	commentHandler := handler.NewCommentHandler(commentService)
	likeHandler := handler.NewLikeHandler(likeService)
	tweetHandler := handler.NewTweetHandler(tweetService)
	playlistHandler := handler.NewPlaylistHandler(playlistService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, authHandler, userHandler, videoHandler, commentHandler,
		likeHandler, tweetHandler, playlistHandler, subscriptionHandler, dashboardHandler)

	// 启动服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
		zap.String("minio", cfg.MinIO.Endpoint),
	)

	// 启动HTTP服务器
	logger.Info("Server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	logger.Debug("Health check requested", zap.String("ip", c.ClientIP()))

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.App.Port),
	})
}
