package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/utils"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

// authenticated guards pages: without a principal the client is sent back
// to the splash page with a flash message and the protected handler never
// runs.
func (h *Handler) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := requestContext(r)
		if rc.User != nil {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("unauthenticated request to guarded page")
		if rc.Session != nil {
			rc.Session.AddFlash(models.FlashError, msgNotLoggedIn)
		}
		http.Redirect(w, r, "/", http.StatusFound)
	})
}

// apiAuthenticated guards API routes with 401 instead of a redirect. The
// principal id is the one the authentication stage put in the context.
func (h *Handler) apiAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
			logger.FromRequest(r).Debug().Int64("user_id", userID).Str("uri", r.RequestURI).Msg("api request authorized")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
		utils.WriteJSON(w, errorResponse{Error: ErrUnauthorized.Error()}, http.StatusUnauthorized)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}
