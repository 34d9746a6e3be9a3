package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	ginhandler "crm-services/internal/adapter/gin/handler"
	ginrouter "crm-services/internal/adapter/gin/router"
	grpcmiddleware "crm-services/internal/adapter/grpc/middleware"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(
	userHandler *ginhandler.UserHandler,
	paymentHandler *ginhandler.PaymentHandler,
	fileHandler *ginhandler.FileHandler,
	rateLimiter *grpcmiddleware.RateLimiter,
	ginAddr string,
	l *zap.Logger,
) *http.Server {
	router := ginrouter.SetupRouter(userHandler, paymentHandler, fileHandler, rateLimiter, l)

	l.Info("REST API configured", zap.String("address", ginAddr))

	return &http.Server{
		Addr:              ginAddr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
