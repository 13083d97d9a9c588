package http

import (
	"net/http"
	"path/filepath"
)

const (
	splashPage = "splash.html"
	homePage   = "dist/index.html"
)

func (h *Handler) splash(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, splashPage)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, homePage)
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, page string) {
	w.Header().Set("Cache-Control", "no-store")
	http.ServeFile(w, r, filepath.Join(h.publicDir, filepath.FromSlash(page)))
}
