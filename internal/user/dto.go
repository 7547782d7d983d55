// internal/user/dto.go
//
// Request/response shapes for the user endpoints.  Input constraints live
// on validator tags; handler.go runs them before the service is invoked.
package user

import "github.com/go-playground/validator/v10"

// validate is the package-level singleton, mirroring the config loader's
// use of go-playground/validator.
var validate = validator.New()

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Username        string `json:"username"         validate:"required,min=3,max=20"`
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

// RegisterResponse echoes the created account.
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest accepts a username or an email in the same field.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" validate:"required"`
	Password        string `json:"password"          validate:"required"`
}

// LoginResponse carries the signed token and its lifetime.
type LoginResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // seconds
}

// ProfileResponse is the authenticated "who am I" payload.
type ProfileResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
