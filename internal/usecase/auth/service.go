package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"talent-match/internal/config"
	"talent-match/internal/domain/user"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/latency"
	"talent-match/internal/pkg/token"
	"talent-match/internal/repository"
	"talent-match/internal/session"
	"talent-match/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrReservedEmail      = errors.New("email reserved for admin")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

// reservedAdminID keeps the singleton admin record stable across logins.
const reservedAdminID = "admin_001"

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Result is the login/register contract: an opaque token plus the
// password-free user snapshot.
type Result struct {
	Token string        `json:"token"`
	User  user.Snapshot `json:"user"`
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (Result, error)
	Register(ctx context.Context, in RegisterInput) (Result, error)
	Logout(ctx context.Context) error
}

type Service struct {
	users    repository.UserRepository
	sessions *session.Manager
	tokens   token.Service
	delay    *latency.Simulator
	cache    *cache.Redis
	admin    config.AdminConfig

	now func() time.Time
}

func NewService(users repository.UserRepository, sessions *session.Manager, tokens token.Service, delay *latency.Simulator, c *cache.Redis, admin config.AdminConfig) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		delay:    delay,
		cache:    c,
		admin:    admin,
		now:      time.Now,
	}
}

// Login matches email case-exact as stored. The reserved admin pair always
// succeeds and re-ensures the singleton admin record; everything else goes
// through the users collection and a hash comparison.
func (s *Service) Login(ctx context.Context, in LoginInput) (Result, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return Result{}, err
	}

	if in.Email == s.admin.Email && in.Password == s.admin.Password {
		return s.loginReservedAdmin(ctx)
	}

	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Result{}, ErrInvalidCredentials
		}
		return Result{}, ErrInternal
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return Result{}, ErrInvalidCredentials
	}

	return s.establish(ctx, u.Snapshot())
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Result, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return Result{}, err
	}

	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return Result{}, ErrInvalidInput
	}
	if email == s.admin.Email {
		return Result{}, ErrReservedEmail
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return Result{}, ErrInternal
	}
	if exists {
		return Result{}, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, ErrInternal
	}

	u := user.User{
		ID:           "user_" + uuid.NewString(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         user.ParseRole(in.Role),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Append(ctx, u); err != nil {
		return Result{}, ErrInternal
	}
	_ = s.cache.InvalidateCollection(ctx, storage.CollectionUsers)

	return s.establish(ctx, u.Snapshot())
}

// Logout clears the session and nothing else; it always succeeds.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.delay.Wait(ctx); err != nil {
		return err
	}
	return s.sessions.Clear(ctx)
}

// loginReservedAdmin replaces any stale record holding the reserved email
// with a fresh singleton admin user, so repeat logins never duplicate it.
func (s *Service) loginReservedAdmin(ctx context.Context) (Result, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, ErrInternal
	}

	adminUser := user.User{
		ID:           reservedAdminID,
		Name:         s.admin.Name,
		Email:        s.admin.Email,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.ReplaceByEmail(ctx, s.admin.Email, adminUser); err != nil {
		return Result{}, ErrInternal
	}
	_ = s.cache.InvalidateCollection(ctx, storage.CollectionUsers)

	return s.establish(ctx, adminUser.Snapshot())
}

func (s *Service) establish(ctx context.Context, snap user.Snapshot) (Result, error) {
	tok, err := s.tokens.Generate(snap)
	if err != nil {
		return Result{}, ErrInternal
	}
	if err := s.sessions.Establish(ctx, tok, snap); err != nil {
		return Result{}, ErrInternal
	}
	return Result{Token: tok, User: snap}, nil
}
