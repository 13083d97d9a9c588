package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-web-bootstrap/internal/config"
	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/mock"
	"github.com/MKhiriev/go-web-bootstrap/internal/store"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, config.App{
		TokenSignKey:  "token-sign-key",
		TokenIssuer:   "test",
		TokenDuration: time.Hour,
	}, logger.Nop()).(*authService)
	svc.bcryptCost = bcrypt.MinCost

	return svc, repo
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	form := models.RegisterForm{
		Name:      " John ",
		Email:     "john@example.com",
		Username:  "john",
		Password:  "password1",
		Password2: "password1",
	}

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "John", u.Name)
			assert.Equal(t, "john", u.Username)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password1")))
			u.UserID = 1
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_RegisterUser_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.RegisterForm{Username: "  ", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err = svc.RegisterUser(ctx, models.RegisterForm{Username: "john", Password: "password1"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: 7, Username: "john"}

	tests := []struct {
		name     string
		form     models.LoginForm
		setup    func(repo *mock.MockUserRepository, hash string)
		wantErr  error
		wantUser int64
	}{
		{
			name: "success",
			form: models.LoginForm{Username: "john", Password: "password1"},
			setup: func(repo *mock.MockUserRepository, hash string) {
				u := stored
				u.PasswordHash = hash
				repo.EXPECT().FindUserByUsername(gomock.Any(), "john").Return(u, nil)
			},
			wantUser: 7,
		},
		{
			name: "wrong password",
			form: models.LoginForm{Username: "john", Password: "nope"},
			setup: func(repo *mock.MockUserRepository, hash string) {
				u := stored
				u.PasswordHash = hash
				repo.EXPECT().FindUserByUsername(gomock.Any(), "john").Return(u, nil)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name: "unknown user",
			form: models.LoginForm{Username: "ghost", Password: "password1"},
			setup: func(repo *mock.MockUserRepository, _ string) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name: "store unavailable",
			form: models.LoginForm{Username: "john", Password: "password1"},
			setup: func(repo *mock.MockUserRepository, _ string) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "john").Return(models.User{}, store.ErrStoreUnavailable)
			},
			wantErr: store.ErrStoreUnavailable,
		},
		{
			name:    "empty credentials",
			form:    models.LoginForm{},
			setup:   func(*mock.MockUserRepository, string) {},
			wantErr: ErrInvalidDataProvided,
		},
	}

	hash := mustHash(t, "password1")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestAuthSvc(t, ctrl)
			tt.setup(repo, hash)

			user, err := svc.Login(context.Background(), tt.form)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user.UserID)
		})
	}
}

func TestAuthService_Principal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, int64(7)).Return(models.User{UserID: 7, Username: "john"}, nil)
	repo.EXPECT().FindUserByID(ctx, int64(8)).Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().FindUserByID(ctx, int64(9)).Return(models.User{}, errors.New("boom"))

	user, err := svc.Principal(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "john", user.Username)

	_, err = svc.Principal(ctx, 8)
	assert.ErrorIs(t, err, ErrPrincipalNotFound)

	_, err = svc.Principal(ctx, 9)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrPrincipalNotFound)
}

func TestAuthService_Tokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	svc.tokenSignKey = ""
	_, err = svc.CreateToken(ctx, models.User{UserID: 42})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
