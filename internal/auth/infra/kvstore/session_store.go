package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
	"github.com/dwikikusuma/storefront/internal/storage"
)

const (
	UserKey    = "loggedInUser"
	MessageKey = "authMessage"
)

// SessionStore keeps the user in durable storage and the one-shot message
// in the session-scoped store.
type SessionStore struct {
	durable storage.Store
	session storage.Store
	log     *slog.Logger
}

func NewSessionStore(durable, session storage.Store, log *slog.Logger) *SessionStore {
	return &SessionStore{durable: durable, session: session, log: log}
}

// LoadUser treats a missing or unparsable value as "logged out".
func (s *SessionStore) LoadUser(ctx context.Context) (*domain.User, error) {
	raw, err := s.durable.Get(ctx, UserKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user *domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn("stored user is malformed, starting logged out", slog.Any("err", err))
		return nil, nil
	}
	return user, nil
}

func (s *SessionStore) SaveUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return s.durable.Delete(ctx, UserKey)
	}

	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return s.durable.Set(ctx, UserKey, string(b))
}

func (s *SessionStore) LoadMessage(ctx context.Context) (string, error) {
	msg, err := s.session.Get(ctx, MessageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	return msg, err
}

func (s *SessionStore) SaveMessage(ctx context.Context, msg string) error {
	if msg == "" {
		return s.session.Delete(ctx, MessageKey)
	}
	return s.session.Set(ctx, MessageKey, msg)
}
