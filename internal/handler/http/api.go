package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/utils"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

// getSession exposes the projected locals. This is where the splash page
// renders flash messages, so they are consumed here.
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	l := locals(r)
	if l.Session != nil {
		l.Session.ConsumeFlashes()
	}
	utils.WriteJSON(w, l, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, requestContext(r).User, http.StatusOK)
}

func (h *Handler) createToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := requestContext(r).User

	token, err := h.services.AuthService.CreateToken(ctx, *user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		code := statusFromError(err)
		utils.WriteJSON(w, errorResponse{Error: http.StatusText(code)}, code)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "Bearer",
		ExpiresIn:   int64(token.ExpiresIn().Seconds()),
	}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	build := h.services.AppInfoService.GetBuildInfo(ctx)

	utils.WriteJSON(w, models.ServerVersion{
		Version:     h.services.AppInfoService.GetAppVersion(ctx),
		BuildDate:   build.BuildDate(),
		BuildCommit: build.BuildCommit(),
	}, http.StatusOK)
}

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	status := h.services.HealthService.Check(r.Context())

	code := http.StatusOK
	if status.Status != models.StatusOK {
		code = http.StatusServiceUnavailable
	}
	utils.WriteJSON(w, status, code)
}
