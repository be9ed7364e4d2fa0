package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/CPU-commits/Intranet_BCatalog/catalog/docs"
	"github.com/CPU-commits/Intranet_BCatalog/controllers"
	"github.com/CPU-commits/Intranet_BCatalog/db"
	"github.com/CPU-commits/Intranet_BCatalog/middlewares"
	"github.com/CPU-commits/Intranet_BCatalog/models"
	"github.com/CPU-commits/Intranet_BCatalog/repositories"
	"github.com/CPU-commits/Intranet_BCatalog/res"
	"github.com/CPU-commits/Intranet_BCatalog/services"
	"github.com/CPU-commits/Intranet_BCatalog/settings"
	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const SHUTDOWN_TIMEOUT = 10 * time.Second

type Options struct {
	ClientURL string
	JWTSecret string
	RateLimit uint
}

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, &res.Response{
		Success:    false,
		StatusCode: http.StatusTooManyRequests,
		Message:    "Too many requests. Try again in " + time.Until(info.ResetTime).String(),
	})
}

func NewRouter(database *mongo.Database, logger *zap.Logger, options Options) *gin.Engine {
	router := gin.New()
	// Proxies
	router.SetTrustedProxies([]string{"localhost"})
	router.Use(middlewares.RequestIDMiddleware())
	// Zap logger
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/api/healthz", "/api/swagger"},
	}))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error(
			"panic recovered",
			zap.String("request_id", c.GetString(middlewares.REQUEST_ID_KEY)),
			zap.Any("error", recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, res.Response{
			Success:    false,
			StatusCode: http.StatusInternalServerError,
			Message:    fmt.Sprintf("Server Internal Error: %v", recovered),
		})
	}))
	// Docs
	docs.SwaggerInfo.BasePath = "/api"
	docs.SwaggerInfo.Version = "v1"
	// CORS
	httpOrigin := "http://" + options.ClientURL
	httpsOrigin := "https://" + options.ClientURL
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{httpOrigin, httpsOrigin},
		AllowMethods:     []string{"GET", "OPTIONS", "PUT", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middlewares.REQUEST_ID_HEADER},
		ExposeHeaders:    []string{middlewares.REQUEST_ID_HEADER},
		AllowCredentials: true,
		AllowWebSockets:  false,
		MaxAge:           12 * time.Hour,
	}))
	// Secure
	sslUrl := "ssl." + options.ClientURL
	router.Use(secure.New(secure.Config{
		SSLHost:              sslUrl,
		STSSeconds:           315360000,
		STSIncludeSubdomains: true,
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		IENoOpen:             true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		SSLProxyHeaders: map[string]string{
			"X-Fowarded-Proto": "https",
		},
	}))
	// Rate limit
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: options.RateLimit,
	})
	router.Use(ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: ErrorHandler,
		KeyFunc:      keyFunc,
	}))
	// Dependencies
	userRepository := repositories.NewUserRepository(models.NewUserModel(database))
	categoryRepository := repositories.NewCategoryRepository(models.NewCategoryModel(database))
	courseRepository := repositories.NewCourseRepository(models.NewCourseModel(database))

	categoryController := controllers.NewCategoryController(
		services.NewCategoryService(userRepository, categoryRepository),
	)
	courseController := controllers.NewCourseController(
		services.NewCourseService(userRepository, categoryRepository, courseRepository),
	)
	// Routes
	categories := router.Group("/api/categories")
	courses := router.Group("/api/courses")
	{
		// Categories
		categories.POST(
			"",
			middlewares.JWTMiddleware(options.JWTSecret),
			categoryController.CreateCategory,
		)
		categories.GET("", categoryController.GetCategories)
		// Courses
		courses.POST(
			"",
			middlewares.JWTMiddleware(options.JWTSecret),
			middlewares.RolesMiddleware([]string{models.ADMIN}),
			courseController.CreateCourse,
		)
		courses.PUT(
			"/:courseId",
			middlewares.JWTMiddleware(options.JWTSecret),
			middlewares.RolesMiddleware([]string{models.ADMIN}),
			courseController.UpdateCourse,
		)
		courses.GET("", courseController.GetCourses)
	}
	// Route docs
	router.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	// Route healthz
	router.GET("/api/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, &res.Response{
			Success:    true,
			StatusCode: http.StatusOK,
		})
	})
	// No route
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, res.Response{
			Success:    false,
			StatusCode: http.StatusNotFound,
			Message:    "Not found",
		})
	})
	return router
}

// Init serves the API until ctx is cancelled, then drains requests and
// closes the store handle
func Init(ctx context.Context) error {
	settingsData := settings.GetSettings()
	logger, err := NewLogger(settingsData.IsProd())
	if err != nil {
		return err
	}
	defer logger.Sync()
	if settingsData.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	InitValidators()

	conn, err := db.NewConnection(ctx, settingsData.MONGO_CONNECTION, settingsData.MONGO_DB)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
		defer cancel()
		if err := conn.Disconnect(disconnectCtx); err != nil {
			logger.Error("mongo disconnect", zap.Error(err))
		}
	}()

	router := NewRouter(conn.Database(), logger, Options{
		ClientURL: settingsData.CLIENT_URL,
		JWTSecret: settingsData.JWT_SECRET_KEY,
		RateLimit: settingsData.RATE_LIMIT,
	})
	httpServer := &http.Server{
		Addr:    ":" + settingsData.PORT,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
