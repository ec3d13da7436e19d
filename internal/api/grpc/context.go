package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// AdminEmailKey is the metadata key the auth interceptor sets after verifying
// an admin token.
const AdminEmailKey = "admin-email"

// GetAdminEmailFromContext extracts the verified admin from the gRPC metadata.
func GetAdminEmailFromContext(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Errorf(codes.Unauthenticated, "metadata is not provided")
	}

	emails := md.Get(AdminEmailKey)
	if len(emails) == 0 {
		return "", status.Errorf(codes.Unauthenticated, "admin identity is not provided in metadata")
	}
	return emails[0], nil
}
