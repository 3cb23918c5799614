package session

import (
	"context"
	"testing"

	"talent-match/internal/domain/user"
	"talent-match/internal/storage"
	"talent-match/internal/storage/memory"
)

var snap = user.Snapshot{ID: "user_1", Name: "Dina", Email: "dina@x.io", Role: user.RoleCandidate}

func TestManager_EstablishCurrentClear(t *testing.T) {
	ctx := context.Background()
	m := NewManager(memory.New())

	if _, ok, err := m.Current(ctx); err != nil || ok {
		t.Fatalf("fresh manager should be anonymous, ok=%v err=%v", ok, err)
	}

	if err := m.Establish(ctx, "tok-1", snap); err != nil {
		t.Fatalf("establish: %v", err)
	}
	s, ok, err := m.Current(ctx)
	if err != nil || !ok {
		t.Fatalf("expected session, ok=%v err=%v", ok, err)
	}
	if s.Token != "tok-1" || s.User != snap {
		t.Fatalf("unexpected session %+v", s)
	}

	if err := m.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := m.Current(ctx); ok {
		t.Fatalf("expected anonymous after clear")
	}
	// Clearing twice is fine.
	if err := m.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestManager_EstablishReplacesSession(t *testing.T) {
	ctx := context.Background()
	m := NewManager(memory.New())

	if err := m.Establish(ctx, "tok-1", snap); err != nil {
		t.Fatalf("establish: %v", err)
	}
	other := user.Snapshot{ID: "user_2", Email: "eka@x.io", Role: user.RoleRecruiter}
	if err := m.Establish(ctx, "tok-2", other); err != nil {
		t.Fatalf("re-establish: %v", err)
	}

	if _, ok, _ := m.Matches(ctx, "tok-1"); ok {
		t.Fatalf("old token must not match after replacement")
	}
	s, ok, err := m.Matches(ctx, "tok-2")
	if err != nil || !ok {
		t.Fatalf("new token should match, ok=%v err=%v", ok, err)
	}
	if s.User.ID != "user_2" {
		t.Fatalf("unexpected session user %+v", s.User)
	}
}

func TestManager_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	st := memory.New()

	first := NewManager(st)
	if err := first.Establish(ctx, "tok-1", snap); err != nil {
		t.Fatalf("establish: %v", err)
	}

	// A new manager over the same store picks up the persisted session.
	second := NewManager(st)
	s, ok, err := second.Current(ctx)
	if err != nil || !ok {
		t.Fatalf("expected persisted session, ok=%v err=%v", ok, err)
	}
	if s.Token != "tok-1" || s.User.Email != "dina@x.io" {
		t.Fatalf("unexpected restored session %+v", s)
	}
}

func TestManager_TornRecordIsAnonymous(t *testing.T) {
	ctx := context.Background()
	st := memory.New()

	// Token present but user record missing.
	if err := st.Write(ctx, storage.KeyToken, []byte("tok-1")); err != nil {
		t.Fatalf("write: %v", err)
	}
	m := NewManager(st)
	if _, ok, err := m.Current(ctx); err != nil || ok {
		t.Fatalf("torn record must read as anonymous, ok=%v err=%v", ok, err)
	}
}
