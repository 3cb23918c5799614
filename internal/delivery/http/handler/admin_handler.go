package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	ucadmin "talent-match/internal/usecase/admin"
	"talent-match/internal/views"
)

const (
	activityPerSource = 5
	activityLimit     = 10
)

type AdminHandler struct {
	uc ucadmin.AdminUsecase
}

func NewAdminHandler(uc ucadmin.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/stats", h.Stats)
	r.Get("/users", h.Users)
	r.Get("/activity", h.Activity)
}

func (h *AdminHandler) Stats(c fiber.Ctx) error {
	st, err := h.uc.DashboardStats(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}

func (h *AdminHandler) Users(c fiber.Ctx) error {
	users, err := h.uc.Users(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"users": users})
}

type activityEntry struct {
	views.Activity
	Time string `json:"time"`
}

func (h *AdminHandler) Activity(c fiber.Ctx) error {
	acts, err := h.uc.RecentActivity(c.Context(), activityPerSource, activityLimit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	now := time.Now()
	out := make([]activityEntry, 0, len(acts))
	for _, a := range acts {
		out = append(out, activityEntry{Activity: a, Time: views.TimeAgo(a.OccurredAt, now)})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"activities": out})
}
