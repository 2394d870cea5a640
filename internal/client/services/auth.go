package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/neatdog/neatdog/internal/client/models"
	"github.com/neatdog/neatdog/internal/client/session"
)

const minPasswordLen = 6

// Sessions is the session surface AuthService drives. *session.Manager
// satisfies it.
type Sessions interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Signup(ctx context.Context, email, password, name string) (models.User, error)
	Logout(ctx context.Context)
	Restore(ctx context.Context) error
	Refresh(ctx context.Context) error
	Current() (session.Session, bool)
}

// AuthService validates credentials before handing them to the session.
type AuthService struct {
	sessions Sessions
}

func NewAuthService(s Sessions) *AuthService {
	return &AuthService{sessions: s}
}

func (a *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return models.User{}, err
	}
	return a.sessions.Login(ctx, email, password)
}

func (a *AuthService) Signup(ctx context.Context, email, password, name string) (models.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return models.User{}, err
	}
	if strings.TrimSpace(name) == "" {
		return models.User{}, invalid("please enter your name")
	}
	return a.sessions.Signup(ctx, email, password, name)
}

func (a *AuthService) Logout(ctx context.Context) { a.sessions.Logout(ctx) }

func (a *AuthService) Restore(ctx context.Context) error { return a.sessions.Restore(ctx) }

func (a *AuthService) Refresh(ctx context.Context) error { return a.sessions.Refresh(ctx) }

// Current returns the signed-in session, if any.
func (a *AuthService) Current() (session.Session, bool) { return a.sessions.Current() }

func validateCredentials(email, password string) error {
	if email == "" || !strings.Contains(email, "@") {
		return invalid("please enter a valid email address")
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return invalid("password must be at least 6 characters")
	}
	return nil
}
