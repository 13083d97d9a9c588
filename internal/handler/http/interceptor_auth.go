package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/service"
	"github.com/MKhiriev/go-web-bootstrap/internal/utils"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

// authenticator resolves the principal of the request. The session binding
// comes first; without one, an "Authorization: Bearer" token is accepted.
// Neither being present is not an error: the principal stays nil and route
// guards decide.
type authenticator struct {
	auth service.AuthService
}

func newAuthenticator(auth service.AuthService) *authenticator {
	return &authenticator{auth: auth}
}

func (a *authenticator) Name() string {
	return "authenticator"
}

func (a *authenticator) Intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)
		rc := requestContext(r)

		user, err := a.principal(ctx, rc, r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("error resolving principal")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if user != nil {
			rc.User = user
			ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)

			l := log.GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Int64("user_id", user.UserID)
			})
			ctx = l.WithContext(ctx)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *authenticator) principal(ctx context.Context, rc *models.RequestContext, authHeader string) (*models.User, error) {
	log := logger.FromContext(ctx)

	if rc.Session.IsAuthenticated() {
		user, err := a.auth.Principal(ctx, rc.Session.UserID)
		if errors.Is(err, service.ErrPrincipalNotFound) {
			log.Warn().Int64("user_id", rc.Session.UserID).Msg("session bound to a removed account")
			rc.Session.SetUser(0)
			return nil, nil
		}
		return user, err
	}

	if authHeader == "" {
		return nil, nil
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		log.Debug().Err(err).Msg("ignoring authorization header")
		return nil, nil
	}

	token, err := a.auth.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, nil
	}

	user, err := a.auth.Principal(ctx, token.UserID)
	if errors.Is(err, service.ErrPrincipalNotFound) {
		return nil, nil
	}
	return user, err
}
