package handler

import (
	"github.com/gofiber/fiber/v3"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/guard"
	"talent-match/internal/pkg/response"
	"talent-match/internal/session"
)

// GuardHandler lets the client ask, per navigation, whether a view is
// reachable and where to go instead. It runs outside the auth middleware:
// the anonymous case is a legitimate answer, not a failure.
type GuardHandler struct {
	sessions *session.Manager
}

func NewGuardHandler(sessions *session.Manager) *GuardHandler {
	return &GuardHandler{sessions: sessions}
}

func (h *GuardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/guard/:view", h.Evaluate)
}

func (h *GuardHandler) Evaluate(c fiber.Ctx) error {
	sess, authenticated, err := h.sessions.Current(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	state := guard.State{Authenticated: authenticated}
	if authenticated {
		state.Role = sess.User.Role
	}

	dec, known := guard.EvaluateView(c.Params("view"), state)
	if !known {
		return middleware.NewAppError(fiber.StatusNotFound, "Unknown view", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dec)
}
