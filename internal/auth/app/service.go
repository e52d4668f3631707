package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
	"github.com/dwikikusuma/storefront/pkg/apperr"
)

var (
	ErrNotAuthenticated = apperr.New(apperr.ErrNotAuthenticated, "You must be logged in to continue.")
	ErrAccountGone      = apperr.New(apperr.ErrNotAuthenticated, domain.LoggedOutMessage)
)

// Service is the session holder.
type Service struct {
	mu    sync.Mutex
	api   Authenticator
	store SessionStore
	log   *slog.Logger

	user    *domain.User
	message string
}

func NewService(ctx context.Context, api Authenticator, store SessionStore, log *slog.Logger) *Service {
	user, err := store.LoadUser(ctx)
	if err != nil {
		log.Warn("session load failed, starting logged out", slog.Any("err", err))
		user = nil
	}

	msg, err := store.LoadMessage(ctx)
	if err != nil {
		log.Warn("auth message load failed", slog.Any("err", err))
		msg = ""
	}

	return &Service{
		api:     api,
		store:   store,
		log:     log,
		user:    user,
		message: msg,
	}
}

// Current returns a copy of the signed-in user, or nil.
func (s *Service) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// Login leaves the session untouched on any failure. Backend messages come
// back verbatim as the error text.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	s.setMessage(ctx, "")

	if err := creds.Validate(); err != nil {
		return "", err
	}

	res, err := s.api.Login(ctx, creds)
	if err != nil {
		s.log.Info("login failed", slog.String("username", creds.Username), slog.Any("err", err))
		return "", err
	}

	user := res.User
	s.setUser(ctx, &user)
	s.log.Info("logged in", slog.String("user_id", user.ID))
	return res.Message, nil
}

// Signup creates the account; the caller still has to log in.
func (s *Service) Signup(ctx context.Context, reg domain.Registration) (string, error) {
	s.setMessage(ctx, "")

	if err := reg.Validate(); err != nil {
		return "", err
	}

	msg, err := s.api.Signup(ctx, reg)
	if err != nil {
		s.log.Info("signup failed", slog.String("username", reg.Username), slog.Any("err", err))
		return "", err
	}
	return msg, nil
}

// Logout clears the session. A non-empty reason becomes the one-shot
// message shown on the next read.
func (s *Service) Logout(ctx context.Context, reason string) {
	s.setUser(ctx, nil)
	if reason != "" {
		s.setMessage(ctx, reason)
	}
	s.log.Info("logged out", slog.String("reason", reason))
}

func (s *Service) AuthMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

func (s *Service) ClearAuthMessage(ctx context.Context) {
	s.setMessage(ctx, "")
}

// ConsumeAuthMessage returns the pending message and clears it.
func (s *Service) ConsumeAuthMessage(ctx context.Context) string {
	msg := s.AuthMessage()
	if msg != "" {
		s.setMessage(ctx, "")
	}
	return msg
}

// CheckUserExists treats every failure as "gone", as the storefront always
// has.
func (s *Service) CheckUserExists(ctx context.Context, id string) bool {
	if id == "" {
		return false
	}
	if _, err := s.api.GetUser(ctx, id); err != nil {
		s.log.Debug("user existence check failed", slog.String("user_id", id), slog.Any("err", err))
		return false
	}
	return true
}

// RequireUser guards protected operations.
func (s *Service) RequireUser(ctx context.Context) (domain.User, error) {
	user := s.Current()
	if user == nil {
		return domain.User{}, ErrNotAuthenticated
	}

	if !user.Complete() {
		s.Logout(ctx, domain.LoggedOutMessage)
		return domain.User{}, ErrNotAuthenticated
	}

	if !s.CheckUserExists(ctx, user.ID) {
		s.Logout(ctx, domain.LoggedOutMessage)
		return domain.User{}, ErrAccountGone
	}

	return *user, nil
}

// Profile fetches the signed-in user's record from the backend.
func (s *Service) Profile(ctx context.Context) (domain.User, error) {
	user := s.Current()
	if !user.Complete() {
		return domain.User{}, ErrNotAuthenticated
	}
	return s.api.GetUser(ctx, user.ID)
}

func (s *Service) setUser(ctx context.Context, user *domain.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	if err := s.store.SaveUser(ctx, user); err != nil {
		s.log.Warn("session save failed", slog.Any("err", err))
	}
}

func (s *Service) setMessage(ctx context.Context, msg string) {
	s.mu.Lock()
	changed := s.message != msg
	s.message = msg
	s.mu.Unlock()

	if !changed {
		return
	}
	if err := s.store.SaveMessage(ctx, msg); err != nil {
		s.log.Warn("auth message save failed", slog.Any("err", err))
	}
}
