package intercepters

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type contextKey string

// RealIPKey holds the x-real-ip metadata value in call contexts.
const RealIPKey contextKey = "real-ip"

// RealIP returns the caller address stored by WithRealIP.
func RealIP(ctx context.Context) string {
	ip, _ := ctx.Value(RealIPKey).(string)
	return ip
}

// WithRealIP copies the x-real-ip metadata value into the call context.
func WithRealIP(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ips := md.Get("x-real-ip"); len(ips) > 0 {
			ctx = context.WithValue(ctx, RealIPKey, ips[0])
		}
	}
	return handler(ctx, req)
}
