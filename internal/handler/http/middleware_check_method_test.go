// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter mirrors the shape of the user routes without Handler.Init().
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/home/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("home"))
	})
	router.Post("/users/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	})
	router.Get("/users/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "GET /home/ passes through", method: http.MethodGet, path: "/home/", expectedStatus: http.StatusOK},
		{name: "POST /users/login passes through", method: http.MethodPost, path: "/users/login", expectedStatus: http.StatusFound},
		{name: "GET /users/login is 404", method: http.MethodGet, path: "/users/login", expectedStatus: http.StatusNotFound},
		{name: "POST /home/ is 404", method: http.MethodPost, path: "/home/", expectedStatus: http.StatusNotFound},
		{name: "DELETE /users/logout is 404", method: http.MethodDelete, path: "/users/logout", expectedStatus: http.StatusNotFound},
		{name: "unknown path is 404", method: http.MethodGet, path: "/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	rr := httptest.NewRecorder()
	buildRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/home/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "home", rr.Body.String())
}

func TestCheckHTTPMethod_DirectCallWithRegisteredMethod(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	CheckHTTPMethod(router)(rr, httptest.NewRequest(http.MethodGet, "/home/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}
