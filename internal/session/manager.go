package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"talent-match/internal/domain/user"
	"talent-match/internal/storage"
)

// Session is the ephemeral authenticated-identity record, distinct from the
// persisted users collection.
type Session struct {
	Token string        `json:"token"`
	User  user.Snapshot `json:"user"`
}

// Manager owns the single active session. State is either anonymous or
// authenticated; it persists under the token/user keys of the same store the
// collections live in, so a restart resumes the session. Tokens never
// expire: teardown happens only through Clear.
type Manager struct {
	mu     sync.Mutex
	store  storage.Store
	cur    *Session
	loaded bool
}

func NewManager(st storage.Store) *Manager {
	return &Manager{store: st}
}

// Establish transitions anonymous -> authenticated, replacing any previous
// session.
func (m *Manager) Establish(ctx context.Context, token string, snap user.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Both keys hold JSON so every driver, including the jsonb-backed one,
	// accepts them.
	tb, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encode session token: %w", err)
	}
	ub, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	if err := m.store.Write(ctx, storage.KeyToken, tb); err != nil {
		return err
	}
	if err := m.store.Write(ctx, storage.KeyUser, ub); err != nil {
		return err
	}

	m.cur = &Session{Token: token, User: snap}
	m.loaded = true
	return nil
}

// Clear transitions authenticated -> anonymous. Safe to call when already
// anonymous; it is the side effect of logout and of any authorization
// failure.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(ctx, storage.KeyToken); err != nil {
		return err
	}
	if err := m.store.Delete(ctx, storage.KeyUser); err != nil {
		return err
	}

	m.cur = nil
	m.loaded = true
	return nil
}

// Current returns the active session, loading persisted state on first use.
func (m *Manager) Current(ctx context.Context) (Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		if err := m.load(ctx); err != nil {
			return Session{}, false, err
		}
	}
	if m.cur == nil {
		return Session{}, false, nil
	}
	return *m.cur, true, nil
}

// Matches reports whether the given token belongs to the active session.
func (m *Manager) Matches(ctx context.Context, token string) (Session, bool, error) {
	s, ok, err := m.Current(ctx)
	if err != nil || !ok {
		return Session{}, false, err
	}
	if s.Token != token {
		return Session{}, false, nil
	}
	return s, true, nil
}

func (m *Manager) load(ctx context.Context) error {
	tb, err := m.store.Read(ctx, storage.KeyToken)
	if err != nil {
		return err
	}
	ub, err := m.store.Read(ctx, storage.KeyUser)
	if err != nil {
		return err
	}
	m.loaded = true

	if len(tb) == 0 || len(ub) == 0 {
		m.cur = nil
		return nil
	}
	var tok string
	var snap user.Snapshot
	// A torn session record is treated as anonymous rather than fatal.
	if err := json.Unmarshal(tb, &tok); err != nil || tok == "" {
		m.cur = nil
		return nil
	}
	if err := json.Unmarshal(ub, &snap); err != nil {
		m.cur = nil
		return nil
	}
	m.cur = &Session{Token: tok, User: snap}
	return nil
}
