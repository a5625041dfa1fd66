package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"github.com/srgjo27/apsrtc_booking/internal/core/ports"
	"go.uber.org/zap"
)

// session guards state with mu. touched and busy are only written under
// WizardSessions.mu so a sweep never waits on a running action.
type session struct {
	mu      sync.Mutex
	state   domain.WizardState
	touched atomic.Int64 // unix nanos
	busy    atomic.Int32
}

// WizardSessions keeps one in-progress wizard per browser session.
// Sessions live in memory only; abandoned ones are swept after ttl.
type WizardSessions struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	ttl      time.Duration
	clock    ports.Clock
	log      *zap.Logger
}

func NewWizardSessions(ttl time.Duration, clock ports.Clock, log *zap.Logger) *WizardSessions {
	return &WizardSessions{
		sessions: make(map[uuid.UUID]*session),
		ttl:      ttl,
		clock:    clock,
		log:      log,
	}
}

func (m *WizardSessions) Start() (uuid.UUID, domain.WizardState) {
	id := uuid.New()
	state := domain.NewWizardState()

	sess := &session{state: state}
	sess.touched.Store(m.clock.Now().UnixNano())

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()

	return id, state
}

func (m *WizardSessions) Get(id uuid.UUID) (domain.WizardState, error) {
	sess, err := m.lookup(id, false)
	if err != nil {
		return domain.WizardState{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state, nil
}

// Apply runs fn against the session state and stores whatever state fn
// returns, even alongside an error. Calls on one session are serialised.
// A session with an action in flight is never swept.
func (m *WizardSessions) Apply(id uuid.UUID, fn func(domain.WizardState) (Outcome, error)) (Outcome, error) {
	sess, err := m.lookup(id, true)
	if err != nil {
		return Outcome{}, err
	}
	defer m.release(sess)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	out, err := fn(sess.state)
	sess.state = out.State
	return out, err
}

func (m *WizardSessions) Drop(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

func (m *WizardSessions) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep removes sessions idle for longer than ttl and returns how many
// were removed.
func (m *WizardSessions) Sweep() int {
	cutoff := m.clock.Now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, sess := range m.sessions {
		if sess.busy.Load() > 0 || sess.touched.Load() >= cutoff.UnixNano() {
			continue
		}
		delete(m.sessions, id)
		removed++
	}
	return removed
}

func (m *WizardSessions) RunBackgroundCleanup(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	m.log.Info("session sweeper started", zap.Duration("interval", every), zap.Duration("ttl", m.ttl))

	for {
		select {
		case <-ctx.Done():
			m.log.Info("session sweeper stopped")
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.log.Info("expired idle booking sessions", zap.Int("count", n))
			}
		}
	}
}

// lookup finds and touches a session. With acquire it also marks the
// session busy; the caller must release it.
func (m *WizardSessions) lookup(id uuid.UUID, acquire bool) (*session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	sess.touched.Store(m.clock.Now().UnixNano())
	if acquire {
		sess.busy.Add(1)
	}
	return sess, nil
}

func (m *WizardSessions) release(sess *session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess.touched.Store(m.clock.Now().UnixNano())
	sess.busy.Add(-1)
}
