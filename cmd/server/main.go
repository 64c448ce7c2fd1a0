package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"shortlink-cqrs/internal/config"
	"shortlink-cqrs/internal/handler"
	"shortlink-cqrs/internal/middleware"
	"shortlink-cqrs/internal/model"
	"shortlink-cqrs/internal/shortener"
	"shortlink-cqrs/pkg/database"
	auth "shortlink-cqrs/pkg/jwt"
	"shortlink-cqrs/pkg/logger"
	"shortlink-cqrs/pkg/redis"

	_ "shortlink-cqrs/docs"

	"github.com/gin-gonic/gin"
	redisClient "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title 短链接服务 API
// @version 1.0
// @description 基于事件溯源 + CQRS 的短链接服务
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	logger.InitLogger()
	defer func() {
		if err := logger.Logger.Sync(); err != nil {
			fmt.Println("日志同步失败:", err)
		}
	}()
	sugaredLogger := zap.S()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		sugaredLogger.Fatalf("配置加载失败: %v", err)
	}

	db, err := openDatabase(&cfg.Database)
	if err != nil {
		sugaredLogger.Fatalf("数据库初始化失败: %v", err)
	}
	sugaredLogger.Info("✅ 数据库连接成功")

	if err := db.AutoMigrate(&model.EventRecord{}, &model.User{}); err != nil {
		sugaredLogger.Fatalf("数据库迁移失败: %v", err)
	}
	sugaredLogger.Info("✅ 数据库迁移成功")

	// 启动时从事件日志整体回放，重建链接表和统计表。
	// 回放失败说明日志已损坏，直接终止而不是带着坏状态运行。
	eventStore := database.NewEventStore(db)
	service, err := shortener.NewService(eventStore)
	if err != nil {
		sugaredLogger.Fatalf("事件日志回放失败: %v", err)
	}
	sugaredLogger.Infof("✅ 事件回放完成, 共 %d 条事件", len(service.Events()))

	var rdb *redisClient.Client
	if cfg.Cache.Host != "" {
		rdb, err = redis.NewRedisClient(&redis.Options{
			Host: cfg.Cache.Host, Port: cfg.Cache.Port, Password: cfg.Cache.Password, DB: cfg.Cache.DB,
		})
		if err != nil {
			sugaredLogger.Warnf("缓存连接失败: %v", err)
		} else {
			defer func() {
				if err := rdb.Close(); err != nil {
					sugaredLogger.Errorf("关闭 Redis 连接失败: %v", err)
				}
			}()
			sugaredLogger.Info("✅ 缓存连接成功")
		}
	}

	tokenManager := auth.NewManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.ExpirationHours)
	sugaredLogger.Info("✅ 认证管理器初始化成功")

	if err := createAdminUser(db); err != nil {
		sugaredLogger.Errorf("创建管理员失败: %v", err)
	}

	if cfg.App.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.GinZapRecovery(logger.Logger, true))
	router.Use(middleware.GinZapLogger(logger.Logger))
	router.Use(middleware.RateLimit(&cfg.RateLimit))

	router.LoadHTMLGlob("web/templates/*")

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	linkHandler := handler.NewShortLinkHandler(service, rdb)
	authHandler := handler.NewAuthHandler(db, rdb, tokenManager)

	registerRoutes(router, linkHandler, authHandler,
		middleware.AuthMiddleware(tokenManager), middleware.AdminMiddleware())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	sugaredLogger.Infof("🚀 服务启动成功, 访问 http://localhost:%d", cfg.Server.Port)
	sugaredLogger.Infof("📚 Swagger 文档地址: http://localhost:%d/swagger/index.html", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugaredLogger.Fatalf("服务启动失败: %v", err)
	}
}

// openDatabase 按配置选择数据库驱动
func openDatabase(cfg *config.DB) (*gorm.DB, error) {
	switch cfg.Driver {
	case "sqlite":
		return database.InitSQLite(cfg.Path)
	default:
		return database.InitMySQL(cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
	}
}

func registerRoutes(
	router *gin.Engine,
	linkHandler *handler.ShortLinkHandler,
	authHandler *handler.AuthHandler,
	authMiddleware, adminMiddleware gin.HandlerFunc,
) {
	router.GET("/", linkHandler.IndexPage)
	router.GET("/health", linkHandler.HealthCheck)
	router.GET("/:code", linkHandler.RedirectToOriginal)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)
	}

	api := router.Group("/api")
	api.Use(authMiddleware)
	{
		api.GET("/me", authHandler.GetCurrentUser)
		api.POST("/shorten", linkHandler.CreateShortLink)
		api.GET("/links", linkHandler.GetAllLinks)
		api.GET("/stats/:code", linkHandler.GetLinkStats)
	}

	admin := api.Group("")
	admin.Use(adminMiddleware)
	{
		admin.GET("/events", linkHandler.GetEvents)
	}
}

func createAdminUser(db *gorm.DB) error {
	var existing model.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err == nil {
		return nil
	}

	admin := model.User{Username: "admin", Email: "admin@shortlink.local", Role: "admin", IsActive: true}
	if err := admin.SetPassword("admin"); err != nil {
		return err
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	zap.S().Infow("✅ 默认管理员创建成功", "username", "admin")
	return nil
}
