package logger

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
)

// RequestIDInterceptor is a gRPC interceptor that adds a request ID to the context
func RequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		requestID := uuid.New().String()
		ctx = context.WithValue(ctx, RequestIDKey, requestID)
		return handler(ctx, req)
	}
}
