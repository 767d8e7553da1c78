package auth

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/GoSim-25-26J-441/jobly-backend/config"
)

var ErrNoCredentials = errors.New("FIREBASE_CREDENTIALS_PATH is required")

// appConfig returns nil when no project is pinned, leaving the SDK to read
// FIREBASE_CONFIG or the project from the credentials file.
func appConfig(cfg *config.FirebaseConfig) *firebase.Config {
	if cfg.ProjectID == "" {
		return nil
	}
	return &firebase.Config{ProjectID: cfg.ProjectID}
}

// InitializeFirebase returns the Auth client used to verify admin ID tokens.
func InitializeFirebase(ctx context.Context, cfg *config.FirebaseConfig) (*auth.Client, error) {
	if cfg == nil || cfg.CredentialsPath == "" {
		return nil, ErrNoCredentials
	}

	app, err := firebase.NewApp(ctx, appConfig(cfg), option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client (project=%q): %w", cfg.ProjectID, err)
	}
	return client, nil
}
