package models

// LoginForm holds credentials posted to the login route.
// Field names follow the form fields the splash page submits.
type LoginForm struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterForm holds the fields posted to the registration route.
type RegisterForm struct {
	Name      string `json:"name" form:"name" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Username  string `json:"username" form:"username" validate:"required,min=3,max=64"`
	Password  string `json:"password" form:"password" validate:"required,min=8"`
	Password2 string `json:"password2" form:"password2" validate:"required,eqfield=Password"`
}
