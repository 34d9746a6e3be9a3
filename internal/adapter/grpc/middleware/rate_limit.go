package middleware

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// RateLimiterConfig holds configuration for the rate limiter.
type RateLimiterConfig struct {
	RequestsPerSecond float64
	WindowSeconds     int
	Enabled           bool
}

// RateLimiter implements fixed-window rate limiting backed by Redis.
// The same limiter instance serves both the gRPC interceptor and the
// HTTP middleware so both surfaces share one budget per client.
type RateLimiter struct {
	client *redis.Client
	config RateLimiterConfig
	log    *zap.Logger
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(client *redis.Client, config RateLimiterConfig, log *zap.Logger) *RateLimiter {
	return &RateLimiter{
		client: client,
		config: config,
		log:    log,
	}
}

// incrWindow is an atomic INCR-with-expiry; the key only gets a TTL on
// the first hit of the window.
const incrWindow = `
	local key = KEYS[1]
	local window = tonumber(ARGV[1])

	local count = redis.call('INCR', key)
	if count == 1 then
		redis.call('EXPIRE', key, window)
	end

	return count
`

// Allow reports whether one more request from clientIP against scope
// fits inside the current window. Redis errors fail open.
func (rl *RateLimiter) Allow(ctx context.Context, scope, clientIP string) (bool, error) {
	if !rl.config.Enabled {
		return true, nil
	}

	key := fmt.Sprintf("ratelimit:%s:%s", scope, clientIP)
	maxRequests := int64(rl.config.RequestsPerSecond * float64(rl.config.WindowSeconds))

	count, err := rl.client.Eval(ctx, incrWindow, []string{key}, rl.config.WindowSeconds).Int64()
	if err != nil {
		rl.log.Warn("rate limiter redis error, allowing request",
			zap.String("client_ip", clientIP),
			zap.String("scope", scope),
			zap.Error(err),
		)
		return true, nil
	}

	if count > maxRequests {
		rl.log.Warn("rate limit exceeded",
			zap.String("client_ip", clientIP),
			zap.String("scope", scope),
			zap.Int64("count", count),
			zap.Float64("limit", rl.config.RequestsPerSecond),
		)
		return false, nil
	}

	return true, nil
}

// UnaryInterceptor returns a gRPC unary interceptor enforcing the limit.
func (rl *RateLimiter) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if !rl.config.Enabled {
			return handler(ctx, req)
		}

		allowed, err := rl.Allow(ctx, info.FullMethod, rl.getClientIP(ctx))
		if err != nil {
			return handler(ctx, req)
		}
		if !allowed {
			return nil, status.Errorf(codes.ResourceExhausted,
				"rate limit exceeded: %.0f requests/second over %d seconds",
				rl.config.RequestsPerSecond, rl.config.WindowSeconds)
		}

		return handler(ctx, req)
	}
}

// getClientIP extracts the client IP address from the gRPC context.
func (rl *RateLimiter) getClientIP(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if xff := md.Get("x-forwarded-for"); len(xff) > 0 {
			return xff[0]
		}
		if xri := md.Get("x-real-ip"); len(xri) > 0 {
			return xri[0]
		}
	}

	if p, ok := peer.FromContext(ctx); ok {
		return p.Addr.String()
	}

	return "unknown"
}
