package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	ucjob "talent-match/internal/usecase/job"
	"talent-match/internal/views"
)

type JobHandler struct {
	uc ucjob.JobUsecase
}

func NewJobHandler(uc ucjob.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.List)
	r.Get("/jobs/mine", h.Mine)
	r.Get("/jobs/:id", h.GetByID)
}

// Upload is registered separately under the recruiter-gated group.
func (h *JobHandler) Upload(c fiber.Ctx) error {
	actor, ok := middleware.SessionUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req ucjob.UploadInput
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Title and description are required", nil, nil)
	}

	res, err := h.uc.Upload(c.Context(), actor, req)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	jobs, err := h.uc.List(c.Context())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"jobs": jobs})
}

// Mine filters postings down to those created by the session user.
func (h *JobHandler) Mine(c fiber.Ctx) error {
	actor, ok := middleware.SessionUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobs, err := h.uc.List(c.Context())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		fiber.Map{"jobs": views.JobsByRecruiter(jobs, actor.ID)})
}

func (h *JobHandler) GetByID(c fiber.Ctx) error {
	j, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"job": j})
}

func mapJobUsecaseError(err error) error {
	switch {
	case errors.Is(err, ucjob.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Only recruiters can post jobs", nil, err)
	case errors.Is(err, ucjob.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
