package http

import (
	"bufio"
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/session"
	"github.com/MKhiriev/go-web-bootstrap/internal/utils"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

// sessionResolver loads the session named by the signed cookie and commits
// it back right before the response headers are sent.
type sessionResolver struct {
	manager *session.Manager
}

func newSessionResolver(manager *session.Manager) *sessionResolver {
	return &sessionResolver{manager: manager}
}

func (s *sessionResolver) Name() string {
	return "session_resolver"
}

func (s *sessionResolver) Intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		rc := requestContext(r)

		if id, ok := s.manager.Verify(rc.Cookies[s.manager.CookieName()]); ok {
			rc.SessionID = id
		}

		sess, err := s.manager.Load(r.Context(), rc.SessionID)
		if err != nil {
			log.Err(err).Str("session_id", rc.SessionID).Msg("error resolving session")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		rc.Session = sess

		sw := &sessionWriter{
			ResponseWriter: w,
			request:        r,
			rc:             rc,
			manager:        s.manager,
		}
		next.ServeHTTP(sw, r.WithContext(utils.WithRequestContext(r.Context(), rc)))
		sw.commit()
	})
}

// sessionWriter commits the session of its request exactly once, before
// the first byte of the response. When the commit fails the response is
// replaced by 500 and everything the handler writes afterwards is dropped.
type sessionWriter struct {
	http.ResponseWriter
	request *http.Request
	rc      *models.RequestContext
	manager *session.Manager

	committed bool
	failed    bool
}

func (w *sessionWriter) commit() {
	if w.committed {
		return
	}
	w.committed = true

	if err := w.manager.Commit(w.request.Context(), w.ResponseWriter, w.rc.Session); err != nil {
		logger.FromRequest(w.request).Err(err).Msg("error committing session")
		w.failed = true

		header := w.ResponseWriter.Header()
		keep := http.CanonicalHeaderKey(traceIDHeader)
		for key := range header {
			if key != keep {
				header.Del(key)
			}
		}
		http.Error(w.ResponseWriter, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (w *sessionWriter) WriteHeader(statusCode int) {
	w.commit()
	if w.failed {
		return
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.commit()
	if w.failed {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

func (w *sessionWriter) Flush() {
	w.commit()
	if f, ok := w.ResponseWriter.(http.Flusher); ok && !w.failed {
		f.Flush()
	}
}

// Hijack hands the connection over without a session commit.
func (w *sessionWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if h, ok := w.ResponseWriter.(http.Hijacker); ok {
		return h.Hijack()
	}
	return nil, nil, errors.New("hijacking is not supported")
}

func (w *sessionWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
