package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-bootstrap/internal/utils"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

// requestContext returns the bag created by the body decoding stage.
// Requests that bypassed the pipeline get an empty one.
func requestContext(r *http.Request) *models.RequestContext {
	if rc, ok := utils.GetRequestContext(r.Context()); ok {
		return rc
	}
	return models.NewRequestContext()
}

// locals returns the projected read slot, never nil.
func locals(r *http.Request) *models.Locals {
	rc := requestContext(r)
	if rc.Locals == nil {
		return &models.Locals{Session: rc.Session, User: rc.User, Login: rc.User != nil}
	}
	return rc.Locals
}
