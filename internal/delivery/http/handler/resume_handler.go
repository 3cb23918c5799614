package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	ucresume "talent-match/internal/usecase/resume"
	"talent-match/internal/views"
)

type ResumeHandler struct {
	uc ucresume.ResumeUsecase
}

// uploadResumeRequest carries file metadata; the payload itself never
// reaches this service.
type uploadResumeRequest struct {
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
}

func NewResumeHandler(uc ucresume.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/resumes", h.Upload)
	r.Get("/resumes", h.List)
	r.Get("/resumes/mine", h.Mine)
	r.Get("/resumes/:id", h.GetByID)
}

func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	actor, ok := middleware.SessionUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req uploadResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Upload(c.Context(), actor, ucresume.FileMeta{
		Name: req.FileName,
		Size: req.FileSize,
		Type: req.FileType,
	})
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ResumeHandler) List(c fiber.Ctx) error {
	resumes, err := h.uc.List(c.Context())
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"resumes": resumes})
}

// Mine filters the full collection down to the session user's uploads.
func (h *ResumeHandler) Mine(c fiber.Ctx) error {
	actor, ok := middleware.SessionUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	resumes, err := h.uc.List(c.Context())
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		fiber.Map{"resumes": views.ResumesByUser(resumes, actor.ID)})
}

func (h *ResumeHandler) GetByID(c fiber.Ctx) error {
	rec, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"resume": rec})
}

// Candidates is the recruiter roll-up: unique resume uploaders by
// first-seen email.
func (h *ResumeHandler) Candidates(c fiber.Ctx) error {
	resumes, err := h.uc.List(c.Context())
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		fiber.Map{"candidates": views.UniqueCandidates(resumes)})
}

func mapResumeUsecaseError(err error) error {
	switch {
	case errors.Is(err, ucresume.ErrInvalidFileType):
		return middleware.NewAppError(fiber.StatusUnsupportedMediaType, "Only PDF and DOCX files are allowed", nil, err)
	case errors.Is(err, ucresume.ErrFileTooLarge):
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "File size exceeds 10MB limit", nil, err)
	case errors.Is(err, ucresume.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
