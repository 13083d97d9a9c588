package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/utils"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

const defaultBodyLimit int64 = 1 << 20

// bodyDecoder creates the request context and decodes JSON and urlencoded
// bodies into it. Other content types are left unread.
type bodyDecoder struct {
	limit int64
}

func newBodyDecoder(limit int64) *bodyDecoder {
	return &bodyDecoder{limit: limit}
}

func (d *bodyDecoder) Name() string {
	return "body_decoder"
}

func (d *bodyDecoder) Intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := models.NewRequestContext()

		if err := d.decode(w, r, rc); err != nil {
			logger.FromRequest(r).Err(err).Msg("error decoding request body")

			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, ErrMalformedBody.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithRequestContext(r.Context(), rc)))
	})
}

func (d *bodyDecoder) decode(w http.ResponseWriter, r *http.Request, rc *models.RequestContext) error {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return nil
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	switch mediaType {
	case "application/json":
		r.Body = http.MaxBytesReader(w, r.Body, d.limit)

		var body map[string]any
		if err = json.NewDecoder(r.Body).Decode(&body); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}
		rc.Body = body
		rc.Form = flatten(body)
	case "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(w, r.Body, d.limit)

		if err = r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}
		rc.Form = r.PostForm
	}

	return nil
}

// flatten copies the scalar members of a JSON object into form values so
// that handlers read JSON and urlencoded submissions the same way.
func flatten(body map[string]any) url.Values {
	form := url.Values{}
	for key, value := range body {
		switch v := value.(type) {
		case string:
			form.Set(key, v)
		case bool, float64:
			form.Set(key, fmt.Sprint(v))
		}
	}
	return form
}
