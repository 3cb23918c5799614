package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/match"
	"talent-match/internal/pkg/response"
	ucmatch "talent-match/internal/usecase/match"
	"talent-match/internal/views"
)

type MatchHandler struct {
	uc ucmatch.MatchUsecase
}

func NewMatchHandler(uc ucmatch.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/matches", h.List)
	r.Get("/matches/mine", h.Mine)
	r.Get("/matches/:id", h.GetByID)
}

// List returns every match, or the subset for one job when ?jobId= is set.
func (h *MatchHandler) List(c fiber.Ctx) error {
	matches, err := h.uc.ListByJob(c.Context(), c.Query("jobId"))
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"matches": matches})
}

// Mine filters matches down to the session user as candidate.
func (h *MatchHandler) Mine(c fiber.Ctx) error {
	actor, ok := middleware.SessionUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	matches, err := h.uc.List(c.Context())
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		fiber.Map{"matches": views.MatchesByCandidate(matches, actor.ID)})
}

func (h *MatchHandler) GetByID(c fiber.Ctx) error {
	m, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"match":  m,
		"bucket": match.ScoreBucket(m.MatchScore),
	})
}

func mapMatchUsecaseError(err error) error {
	switch {
	case errors.Is(err, ucmatch.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
