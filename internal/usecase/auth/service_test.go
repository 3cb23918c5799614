package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"talent-match/internal/config"
	"talent-match/internal/domain/user"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/latency"
	"talent-match/internal/pkg/token"
	"talent-match/internal/repository"
	"talent-match/internal/session"
	"talent-match/internal/storage"
	"talent-match/internal/storage/memory"
)

func newTestServiceWithCache(t *testing.T, c *cache.Redis) (*Service, *session.Manager, repository.UserRepository) {
	t.Helper()
	st := memory.New()
	users := repository.NewStoreUserRepository(st)
	sessions := session.NewManager(st)
	tokens := token.NewHMACService("test-secret")
	admin := config.AdminConfig{Name: "Platform Admin", Email: "admin@talentmatch.io", Password: "admin-pass"}
	return NewService(users, sessions, tokens, latency.None(), c, admin), sessions, users
}

func newTestService(t *testing.T) (*Service, *session.Manager, repository.UserRepository) {
	t.Helper()
	return newTestServiceWithCache(t, cache.NewRedis(config.RedisConfig{}, nil))
}

func TestService_RegisterThenLogin(t *testing.T) {
	svc, sessions, _ := newTestService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{
		Name:     "Dina",
		Email:    "dina@example.com",
		Password: "s3cret",
		Role:     "recruiter",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.Token == "" {
		t.Fatalf("expected token")
	}
	if reg.User.Role != user.RoleRecruiter {
		t.Fatalf("expected recruiter role, got %q", reg.User.Role)
	}

	s, ok, err := sessions.Current(ctx)
	if err != nil || !ok {
		t.Fatalf("expected active session after register, ok=%v err=%v", ok, err)
	}
	if s.User.Email != "dina@example.com" {
		t.Fatalf("session user mismatch: %q", s.User.Email)
	}

	res, err := svc.Login(ctx, LoginInput{Email: "dina@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.User.ID != reg.User.ID {
		t.Fatalf("login returned a different user")
	}
}

func TestService_LoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Dina", Email: "dina@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Login(ctx, LoginInput{Email: "dina@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_LoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "x"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_RegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "dup@example.com", Password: "pw"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, RegisterInput{Name: "B", Email: "dup@example.com", Password: "pw2"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestService_RegisterReservedEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Impostor",
		Email:    "admin@talentmatch.io",
		Password: "whatever",
	})
	if !errors.Is(err, ErrReservedEmail) {
		t.Fatalf("expected ErrReservedEmail, got %v", err)
	}
}

func TestService_RegisterDefaultsToCandidate(t *testing.T) {
	svc, _, _ := newTestService(t)
	res, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Eka",
		Email:    "eka@example.com",
		Password: "pw",
		Role:     "superuser",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.User.Role != user.RoleCandidate {
		t.Fatalf("expected candidate fallback, got %q", res.User.Role)
	}
}

func TestService_ReservedAdminLoginIsSingleton(t *testing.T) {
	svc, _, users := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := svc.Login(ctx, LoginInput{Email: "admin@talentmatch.io", Password: "admin-pass"})
		if err != nil {
			t.Fatalf("admin login %d: %v", i, err)
		}
		if res.User.Role != user.RoleAdmin {
			t.Fatalf("expected admin role, got %q", res.User.Role)
		}
		if res.User.ID != reservedAdminID {
			t.Fatalf("expected stable admin id, got %q", res.User.ID)
		}
	}

	all, err := users.List(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	count := 0
	for _, u := range all {
		if u.Email == "admin@talentmatch.io" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one admin record, got %d", count)
	}
}

func TestService_ReservedAdminWrongPasswordFallsThrough(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Login(context.Background(), LoginInput{Email: "admin@talentmatch.io", Password: "guess"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_LogoutClearsSession(t *testing.T) {
	svc, sessions, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Dina", Email: "dina@example.com", Password: "pw"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	_, ok, err := sessions.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if ok {
		t.Fatalf("expected anonymous session after logout")
	}

	// Logout is idempotent.
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestService_PasswordNeverStoredPlain(t *testing.T) {
	svc, _, users := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Dina", Email: "dina@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	u, err := users.GetByEmail(ctx, "dina@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.PasswordHash == "" || u.PasswordHash == "s3cret" {
		t.Fatalf("expected a hash, got %q", u.PasswordHash)
	}
}

func TestService_UserWritesInvalidateCache(t *testing.T) {
	srv := miniredis.RunT(t)
	c := cache.NewRedis(config.RedisConfig{Host: srv.Host(), Port: srv.Port()}, nil)
	t.Cleanup(func() { _ = c.Close() })
	svc, _, _ := newTestServiceWithCache(t, c)
	ctx := context.Background()

	warm := func() {
		if err := srv.Set(cache.KeyStats, `{"totalUsers":0}`); err != nil {
			t.Fatalf("warm stats key: %v", err)
		}
		if err := srv.Set(cache.ListKey(storage.CollectionUsers), `[]`); err != nil {
			t.Fatalf("warm list key: %v", err)
		}
	}

	warm()
	if _, err := svc.Register(ctx, RegisterInput{Name: "Dina", Email: "dina@example.com", Password: "pw"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if srv.Exists(cache.KeyStats) || srv.Exists(cache.ListKey(storage.CollectionUsers)) {
		t.Fatalf("register must drop cached stats and user list")
	}

	// The reserved admin login rewrites the users collection too.
	warm()
	if _, err := svc.Login(ctx, LoginInput{Email: "admin@talentmatch.io", Password: "admin-pass"}); err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if srv.Exists(cache.KeyStats) {
		t.Fatalf("reserved admin login must drop cached stats")
	}
}
