// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrMalformedBody is reported when a JSON or urlencoded body cannot be
	// decoded.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrUnauthorized is reported by API routes that require a principal.
	ErrUnauthorized = errors.New("unauthorized")
)

// Flash messages shown to the user after a redirect.
const (
	msgNotLoggedIn        = "You are not logged in"
	msgInvalidCredentials = "Invalid username or password"
	msgUsernameTaken      = "Username is already taken"
	msgRegistered         = "You are registered and can now login"
	msgLoggedOut          = "You are logged out"
)
