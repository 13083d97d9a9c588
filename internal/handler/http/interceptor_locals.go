package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-bootstrap/models"
)

// localsProjector publishes the resolved request state to [models.Locals].
// Pending flash messages are copied, not consumed: they stay in the session
// until a handler renders them.
type localsProjector struct{}

func newLocalsProjector() *localsProjector {
	return &localsProjector{}
}

func (p *localsProjector) Name() string {
	return "locals_projector"
}

func (p *localsProjector) Intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := requestContext(r)

		l := &models.Locals{
			Login:            rc.User != nil,
			Session:          rc.Session,
			User:             rc.User,
			ValidationErrors: rc.ValidationErrors,
		}
		if rc.Session != nil {
			l.SuccessMsg = rc.Session.Flashes(models.FlashSuccess)
			l.ErrorMsg = rc.Session.Flashes(models.FlashError)
			l.Error = rc.Session.Flashes(models.FlashAuth)
		}
		rc.Locals = l

		next.ServeHTTP(w, r)
	})
}
