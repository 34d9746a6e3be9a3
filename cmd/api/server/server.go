package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"crm-services/cmd/api/di"
	"crm-services/internal/config"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	GRPC   *grpc.Server
	HTTP   *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, l *zap.Logger, c *di.Container) *Server {
	return &Server{
		Config: cfg,
		Logger: l,
		GRPC:   SetupGRPC(c.UserUC, c.PaymentUC, c.FileUC, l, c.RateLimiter),
		HTTP:   SetupGinServer(c.UserHandler, c.PaymentHandler, c.FileHandler, c.RateLimiter, ":"+cfg.App.HTTPPort, l),
	}
}

// Start starts both servers and blocks until one of them fails.
func (s *Server) Start() error {
	errCh := make(chan error, 2)

	go func() {
		errCh <- s.startGRPC()
	}()

	go func() {
		s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))
		if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
			return
		}
		errCh <- nil
	}()

	return <-errCh
}

func (s *Server) startGRPC() error {
	lc := net.ListenConfig{}
	lis, err := lc.Listen(context.Background(), "tcp", s.grpcAddress())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	s.Logger.Info("gRPC server running", zap.String("address", s.grpcAddress()))
	if err := s.GRPC.Serve(lis); err != nil {
		return fmt.Errorf("grpc server: %w", err)
	}
	return nil
}

func (s *Server) grpcAddress() string {
	return ":" + s.Config.App.GRPCPort
}
