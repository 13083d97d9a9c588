package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-web-bootstrap/internal/service"
	"github.com/MKhiriev/go-web-bootstrap/internal/session"
	"github.com/MKhiriev/go-web-bootstrap/internal/store"
)

var errorStatusMap = map[error]int{
	ErrMalformedBody: http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrPrincipalNotFound:       http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	session.ErrLoadingSession:    http.StatusInternalServerError,
	session.ErrSavingSession:     http.StatusInternalServerError,
	session.ErrDestroyingSession: http.StatusInternalServerError,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
