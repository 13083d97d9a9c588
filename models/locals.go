package models

// Locals is the read slot populated by the projection stage of the request
// pipeline. Terminal handlers and any rendering step read request state
// exclusively from here.
type Locals struct {
	Login   bool     `json:"login"`
	Session *Session `json:"-"`
	User    *User    `json:"user"`

	SuccessMsg []string `json:"success_msg"`
	ErrorMsg   []string `json:"error_msg"`
	Error      []string `json:"error"`

	ValidationErrors ValidationErrors `json:"validation_errors,omitempty"`
}
