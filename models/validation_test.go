package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormParam(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "username", want: "username"},
		{path: "user.name", want: "user[name]"},
		{path: "user.address.city", want: "user[address][city]"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormParam(tt.path))
		})
	}
}

func TestValidationErrors_ErrorAndMessages(t *testing.T) {
	errs := ValidationErrors{
		{Param: "username", Msg: "Username is required"},
		{Param: "email", Msg: "Email is not valid", Value: "nope"},
	}

	assert.Equal(t, "validation failed: username: Username is required; email: Email is not valid", errs.Error())
	assert.Equal(t, []string{"Username is required", "Email is not valid"}, errs.Messages())
}
