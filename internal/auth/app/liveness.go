package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
)

const DefaultLivenessInterval = 20 * time.Second

// Monitor periodically confirms that the signed-in account still exists and
// force-logs-out when it does not. It checks once on start and then on every
// tick. There is no backoff and no coordination with in-flight commands.
type Monitor struct {
	mu sync.Mutex

	session  *Service
	interval time.Duration
	log      *slog.Logger

	// OnForcedLogout, if set, is called after a forced logout.
	OnForcedLogout func(user domain.User)

	running bool
	done    chan struct{}
	stopped chan struct{}
}

func NewMonitor(session *Service, interval time.Duration, log *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultLivenessInterval
	}
	return &Monitor{
		session:  session,
		interval: interval,
		log:      log,
	}
}

func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return errors.New("liveness monitor already running")
	}
	m.running = true
	m.done = make(chan struct{})
	m.stopped = make(chan struct{})

	m.log.Info("liveness monitor starting", slog.Duration("interval", m.interval))
	go m.loop(ctx, m.done, m.stopped)
	return nil
}

// Stop ends the loop and waits for it to exit.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	close(m.done)
	stopped := m.stopped
	m.mu.Unlock()

	<-stopped
	m.log.Info("liveness monitor stopped")
}

func (m *Monitor) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Monitor) loop(ctx context.Context, done, stopped chan struct{}) {
	defer close(stopped)

	m.Check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Check runs one liveness check and reports whether it logged the user out.
func (m *Monitor) Check(ctx context.Context) bool {
	user := m.session.Current()
	if !user.Complete() {
		return false
	}

	if m.session.CheckUserExists(ctx, user.ID) {
		return false
	}

	// A cancelled context fails the request; that is teardown, not a
	// missing account.
	if ctx.Err() != nil {
		return false
	}

	m.log.Warn("account no longer exists, logging out", slog.String("user_id", user.ID))
	m.session.Logout(ctx, domain.LoggedOutMessage)

	if m.OnForcedLogout != nil {
		m.OnForcedLogout(*user)
	}
	return true
}
