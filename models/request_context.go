package models

import "net/url"

// RequestContext is the per-request bag the pipeline stages fill in order.
// It is created by the body decoding stage and discarded with the request.
type RequestContext struct {
	// Form holds decoded urlencoded fields; JSON bodies are flattened into it too.
	Form url.Values

	// Body is the decoded JSON body, nil for other content types.
	Body map[string]any

	// Cookies maps cookie names to raw values.
	Cookies map[string]string

	// SessionID is the verified id from the signed session cookie, empty when
	// the cookie is missing or its signature does not match.
	SessionID string

	Session *Session
	User    *User
	Locals  *Locals

	ValidationErrors ValidationErrors
}

// NewRequestContext returns an empty bag with initialized maps.
func NewRequestContext() *RequestContext {
	return &RequestContext{
		Form:    url.Values{},
		Cookies: map[string]string{},
	}
}
