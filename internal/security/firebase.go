package security

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"carrental-backend/internal/logger"
)

// idTokenVerifier is the part of *auth.Client this package uses.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier verifies Firebase ID tokens. Admins are users whose token
// carries the custom claim admin=true. credentialsFile may be empty to use
// application default credentials.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsFile string) (Verifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) Verify(ctx context.Context, token string) (*Principal, error) {
	logger.ExternalServiceCall("firebase", "VerifyIDToken")
	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		logger.ExternalServiceResult("firebase", "VerifyIDToken", err)
		return nil, ErrInvalidToken
	}
	logger.ExternalServiceResult("firebase", "VerifyIDToken", nil, "uid", tok.UID)

	if isAdmin, _ := tok.Claims[RoleAdmin].(bool); !isAdmin {
		return nil, ErrNotAdmin
	}
	email, _ := tok.Claims["email"].(string)
	return &Principal{Subject: tok.UID, Email: email, Provider: "firebase"}, nil
}
