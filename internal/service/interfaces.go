package service

import (
	"context"

	"github.com/MKhiriev/go-web-bootstrap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts, checks credentials and resolves principals.
type AuthService interface {
	// RegisterUser hashes the password and persists a new account.
	RegisterUser(ctx context.Context, form models.RegisterForm) (models.User, error)

	// Login returns the account matching the credentials or ErrWrongPassword.
	Login(ctx context.Context, form models.LoginForm) (models.User, error)

	// Principal resolves a session principal. ErrPrincipalNotFound means the
	// account no longer exists.
	Principal(ctx context.Context, userID int64) (*models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HealthService reports the reachability of backing stores.
type HealthService interface {
	Check(ctx context.Context) models.HealthStatus
}
