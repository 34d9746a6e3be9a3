package server

import (
	"go.uber.org/zap"
	grpc "google.golang.org/grpc"

	filespb "crm-services/api/gen/go/files"
	paymentspb "crm-services/api/gen/go/payments"
	userspb "crm-services/api/gen/go/users"
	grpcadapter "crm-services/internal/adapter/grpc"
	"crm-services/internal/adapter/grpc/middleware"
	fileuc "crm-services/internal/usecase/file"
	paymentuc "crm-services/internal/usecase/payment"
	useruc "crm-services/internal/usecase/user"
	"crm-services/pkg/logger"
)

// SetupGRPC creates and configures the gRPC server
func SetupGRPC(
	userUC useruc.Usecase,
	paymentUC paymentuc.Usecase,
	fileUC fileuc.Usecase,
	l *zap.Logger,
	rateLimiter *middleware.RateLimiter,
) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logger.RequestIDInterceptor(),
			rateLimiter.UnaryInterceptor(),
		),
	)

	userspb.RegisterUsersServiceServer(grpcServer, grpcadapter.NewUsersServiceServer(userUC))
	paymentspb.RegisterPaymentsServiceServer(grpcServer, grpcadapter.NewPaymentsServiceServer(paymentUC))
	filespb.RegisterFilesServiceServer(grpcServer, grpcadapter.NewFilesServiceServer(fileUC))

	return grpcServer
}
