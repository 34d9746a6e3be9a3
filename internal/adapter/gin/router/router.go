package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"crm-services/internal/adapter/gin/handler"
	"crm-services/internal/adapter/gin/middleware"
	grpcmiddleware "crm-services/internal/adapter/grpc/middleware"
)

// SetupRouter configures and returns a Gin router with all routes and
// middleware. The health endpoint answers from process state alone and
// never touches the database or Redis.
func SetupRouter(
	userHandler *handler.UserHandler,
	paymentHandler *handler.PaymentHandler,
	fileHandler *handler.FileHandler,
	rateLimiter *grpcmiddleware.RateLimiter,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.RateLimiter(rateLimiter))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.StaticFile("/openapi.json", "api/swagger/crm.swagger.json")
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/openapi.json"),
	)))

	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	payments := router.Group("/payments")
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.PUT("/:id/status", paymentHandler.UpdateStatus)
		payments.DELETE("/:id", paymentHandler.DeletePayment)
	}

	files := router.Group("/files")
	{
		files.POST("/upload", fileHandler.Upload)
		files.GET("", fileHandler.ListFiles)
		files.GET("/:id", fileHandler.GetFile)
		files.GET("/:id/download", fileHandler.Download)
		files.DELETE("/:id", fileHandler.DeleteFile)
	}

	return router
}
