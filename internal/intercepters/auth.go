package intercepters

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/atinyakov/useful-links/internal/app/service"
	"github.com/atinyakov/useful-links/internal/middleware"
)

// NewTokenTrailer carries a freshly issued token back to a caller that sent
// none.
const NewTokenTrailer = "new-token"

// WithJWT authenticates calls with a "Bearer <token>" authorization header.
// Calls without one are assigned a new user whose token is returned in the
// NewTokenTrailer trailer.
func WithJWT(auth service.AuthIface) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		var userID string

		if header := md.Get("authorization"); len(header) > 0 {
			claims, err := auth.ParseRawJWT(strings.TrimPrefix(header[0], "Bearer "))
			if err != nil {
				return nil, status.Errorf(codes.Unauthenticated, "invalid token: %v", err)
			}
			userID = claims.UserID
		} else {
			token, generatedID, err := auth.BuildJWTString()
			if err != nil {
				return nil, status.Errorf(codes.Internal, "cannot issue token: %v", err)
			}
			userID = generatedID

			if err := grpc.SetTrailer(ctx, metadata.Pairs(NewTokenTrailer, token)); err != nil {
				return nil, status.Errorf(codes.Internal, "cannot send token: %v", err)
			}
		}

		return handler(context.WithValue(ctx, middleware.UserIDKey, userID), req)
	}
}
