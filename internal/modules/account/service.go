// README: Account service: registration and login.
package account

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type Service struct {
	store  *Store
	issuer *TokenIssuer
}

func NewService(store *Store, issuer *TokenIssuer) *Service {
	return &Service{store: store, issuer: issuer}
}

// Register creates an account and returns a ready-to-use token.
func (s *Service) Register(ctx context.Context, username, email, password string) (AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return AuthResult{}, fmt.Errorf("%w: username is required", ErrBadRequest)
	}
	if len(password) < minPasswordLength {
		return AuthResult{}, fmt.Errorf("%w: password must be at least %d characters", ErrBadRequest, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	user, err := s.store.Insert(ctx, username, strings.TrimSpace(email), string(hash))
	if err != nil {
		return AuthResult{}, err
	}
	return s.authResult(user)
}

// Login verifies credentials and issues a token. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (AuthResult, error) {
	user, err := s.store.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return AuthResult{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.passwordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	return s.authResult(user)
}

func (s *Service) authResult(user User) (AuthResult, error) {
	token, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
