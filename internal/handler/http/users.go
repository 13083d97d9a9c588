package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/service"
	"github.com/MKhiriev/go-web-bootstrap/internal/store"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	rc := requestContext(r)

	form := models.RegisterForm{
		Name:      rc.Form.Get("name"),
		Email:     rc.Form.Get("email"),
		Username:  rc.Form.Get("username"),
		Password:  rc.Form.Get("password"),
		Password2: rc.Form.Get("password2"),
	}

	if h.rejectInvalid(w, r, form) {
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, form)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Info().Str("username", form.Username).Msg("username already exists")
			rc.Session.AddFlash(models.FlashError, msgUsernameTaken)
			http.Redirect(w, r, "/", http.StatusFound)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			code := statusFromError(err)
			http.Error(w, http.StatusText(code), code)
		}
		return
	}

	log.Info().Int64("id", user.UserID).Msg("user registered")
	rc.Session.AddFlash(models.FlashSuccess, msgRegistered)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	rc := requestContext(r)

	form := models.LoginForm{
		Username: rc.Form.Get("username"),
		Password: rc.Form.Get("password"),
	}

	if h.rejectInvalid(w, r, form) {
		return
	}

	user, err := h.services.AuthService.Login(ctx, form)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword), errors.Is(err, service.ErrInvalidDataProvided):
			rc.Session.AddFlash(models.FlashAuth, msgInvalidCredentials)
			http.Redirect(w, r, "/", http.StatusFound)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			code := statusFromError(err)
			http.Error(w, http.StatusText(code), code)
		}
		return
	}

	sess, err := h.sessions.Regenerate(ctx, rc.Session)
	if err != nil {
		log.Err(err).Msg("error regenerating session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	sess.SetUser(user.UserID)
	rc.Session = sess
	rc.User = &user

	log.Info().Int64("id", user.UserID).Msg("user logged in")
	http.Redirect(w, r, "/home/", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	rc := requestContext(r)

	sess, err := h.sessions.Destroy(r.Context(), w, rc.Session)
	if err != nil {
		log.Err(err).Msg("error destroying session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	rc.Session = sess
	rc.User = nil

	sess.AddFlash(models.FlashSuccess, msgLoggedOut)
	http.Redirect(w, r, "/", http.StatusFound)
}

// rejectInvalid validates form. On failure the errors are recorded in the
// request context, flashed, and the client is redirected to the splash page.
func (h *Handler) rejectInvalid(w http.ResponseWriter, r *http.Request, form any) bool {
	err := h.validator.Validate(r.Context(), form)
	if err == nil {
		return false
	}

	rc := requestContext(r)
	var verrs models.ValidationErrors
	if !errors.As(err, &verrs) {
		logger.FromRequest(r).Err(err).Msg("error validating form")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return true
	}

	rc.ValidationErrors = verrs
	if rc.Locals != nil {
		rc.Locals.ValidationErrors = verrs
	}
	rc.Session.AddFlash(models.FlashError, verrs.Messages()...)

	http.Redirect(w, r, "/", http.StatusFound)
	return true
}
