package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader_OnlyFirstWins(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusFound)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusFound, w.status)
	assert.Equal(t, http.StatusFound, rr.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name         string
		writes       []string
		explicitCode int
		wantStatus   int
		wantSize     int
	}{
		{
			name:       "single write, implicit 200",
			writes:     []string{"OK"},
			wantStatus: http.StatusOK,
			wantSize:   2,
		},
		{
			name:       "multiple writes accumulate size",
			writes:     []string{"<html>", "<body>", "</html>"},
			wantStatus: http.StatusOK,
			wantSize:   19,
		},
		{
			name:         "explicit 404, then write",
			writes:       []string{"not found"},
			explicitCode: http.StatusNotFound,
			wantStatus:   http.StatusNotFound,
			wantSize:     9,
		},
		{
			name:       "empty write still commits headers",
			writes:     []string{""},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			if tt.explicitCode != 0 {
				w.WriteHeader(tt.explicitCode)
			}
			for _, data := range tt.writes {
				_, err := w.Write([]byte(data))
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_StatusOrOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, w.statusOrOK())

	w.WriteHeader(http.StatusSeeOther)
	assert.Equal(t, http.StatusSeeOther, w.statusOrOK())
}

func TestResponseWriter_ProxiesHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Header().Set("Location", "/home/")
	w.WriteHeader(http.StatusFound)

	assert.Equal(t, "/home/", rr.Header().Get("Location"))
	assert.Same(t, rr, w.Unwrap())
}

func TestResponseWriter_Flush(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Flush()

	assert.True(t, rr.Flushed)
	assert.Equal(t, http.StatusOK, w.status)
}
