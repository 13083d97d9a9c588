package models

import (
	"strings"
)

// ValidationError describes one rejected input field.
//
// Param is rendered in bracket notation for nested fields, so a field
// addressed as "user.address.city" is reported as "user[address][city]".
type ValidationError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
	Value any    `json:"value"`
}

// FormParam converts a dotted field path into bracket notation.
func FormParam(path string) string {
	namespace := strings.Split(path, ".")
	formParam := new(strings.Builder)
	formParam.WriteString(namespace[0])
	for _, part := range namespace[1:] {
		formParam.WriteString("[" + part + "]")
	}
	return formParam.String()
}

// ValidationErrors is a list of field errors that implements error.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Param+": "+e.Msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Messages returns the human-readable message of every error in order.
func (v ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Msg)
	}
	return msgs
}
