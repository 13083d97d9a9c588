package http

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
)

const (
	faviconPath   = "/favicon.ico"
	faviconMaxAge = 365 * 24 * time.Hour
)

// staticAssets answers GET and HEAD requests for regular files under the
// public directory and for the favicon. Directories are never listed: such
// requests, like misses, continue down the pipeline.
type staticAssets struct {
	root    http.FileSystem
	favicon string
}

func newStaticAssets(publicDir string, log *logger.Logger) *staticAssets {
	favicon := filepath.Join(publicDir, "favicon.ico")
	if _, err := os.Stat(favicon); err != nil {
		log.Warn().Err(err).Str("path", favicon).Msg("favicon is not available")
	}

	return &staticAssets{
		root:    http.Dir(publicDir),
		favicon: favicon,
	}
}

func (s *staticAssets) Name() string {
	return "static_assets"
}

func (s *staticAssets) Intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		if r.URL.Path == faviconPath {
			s.serveFavicon(w, r)
			return
		}

		if s.serveFile(w, r) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *staticAssets) serveFavicon(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(s.favicon); err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(faviconMaxAge.Seconds())))
	http.ServeFile(w, r, s.favicon)
}

// serveFile reports whether the request was answered from the public directory.
func (s *staticAssets) serveFile(w http.ResponseWriter, r *http.Request) bool {
	name := path.Clean("/" + r.URL.Path)
	if hasDotSegment(name) {
		return false
	}

	f, err := s.root.Open(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.FromRequest(r).Debug().Err(err).Str("path", name).Msg("static lookup failed")
		}
		return false
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil || stat.IsDir() {
		return false
	}

	http.ServeContent(w, r, stat.Name(), stat.ModTime(), f)
	return true
}

func hasDotSegment(name string) bool {
	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
