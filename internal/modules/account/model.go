// README: User account record and module errors.
package account

import (
	"errors"
	"time"
)

var (
	ErrBadRequest         = errors.New("invalid account request")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// User is a registered account. The password hash never leaves this package.
type User struct {
	ID           int64
	Username     string
	Email        string
	passwordHash string
	CreatedAt    time.Time
}

// AuthResult is returned on successful login.
type AuthResult struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}
