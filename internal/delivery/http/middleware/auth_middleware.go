package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"talent-match/internal/domain/user"
	"talent-match/internal/guard"
	"talent-match/internal/pkg/token"
	"talent-match/internal/session"
)

const CtxSessionUserKey = "session_user"

// AuthMiddleware guards the authenticated surface. A missing, invalid, or
// stale token tears the session down and answers 401 with a login redirect
// hint; the client is forced back to the entry view rather than shown a
// typed error.
type AuthMiddleware struct {
	tokens   token.Service
	sessions *session.Manager
}

func NewAuthMiddleware(tokens token.Service, sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, sessions: sessions}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		tok, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return m.reject(c)
		}

		if _, err := m.tokens.Validate(tok); err != nil {
			return m.reject(c)
		}

		sess, active, err := m.sessions.Matches(c.Context(), tok)
		if err != nil {
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
		if !active {
			return m.reject(c)
		}

		c.Locals(CtxSessionUserKey, sess.User)
		return c.Next()
	}
}

func (m *AuthMiddleware) reject(c fiber.Ctx) error {
	_ = m.sessions.Clear(c.Context())
	return NewAppError(fiber.StatusUnauthorized, "Unauthorized", fiber.Map{"redirectTo": guard.LoginPath}, nil)
}

// SessionUser returns the snapshot the auth middleware attached.
func SessionUser(c fiber.Ctx) (user.Snapshot, bool) {
	snap, ok := c.Locals(CtxSessionUserKey).(user.Snapshot)
	return snap, ok
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}
	return tok, true
}
