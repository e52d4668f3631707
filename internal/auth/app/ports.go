package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
)

type Authenticator interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error)
	Signup(ctx context.Context, reg domain.Registration) (string, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
}

// SessionStore persists the signed-in user durably and the one-shot auth
// message in session-scoped storage. A nil user or empty message clears it.
type SessionStore interface {
	LoadUser(ctx context.Context) (*domain.User, error)
	SaveUser(ctx context.Context, user *domain.User) error
	LoadMessage(ctx context.Context) (string, error)
	SaveMessage(ctx context.Context, msg string) error
}
