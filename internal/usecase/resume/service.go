package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"talent-match/internal/domain/resume"
	"talent-match/internal/domain/user"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/latency"
	"talent-match/internal/repository"
	"talent-match/internal/storage"
)

var (
	ErrInvalidFileType = errors.New("file type not allowed")
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrNotFound        = errors.New("resume not found")
	ErrInternal        = errors.New("internal error")
)

// FileMeta is what upload validation runs against: the declared type and
// size, not the payload.
type FileMeta struct {
	Name string
	Size int64
	Type string
}

// UploadResult mirrors the upload wire contract.
type UploadResult struct {
	ID      string        `json:"id"`
	Message string        `json:"message"`
	Resume  resume.Resume `json:"resume"`
}

type ResumeUsecase interface {
	Upload(ctx context.Context, actor user.Snapshot, file FileMeta) (UploadResult, error)
	List(ctx context.Context) ([]resume.Resume, error)
	GetByID(ctx context.Context, id string) (resume.Resume, error)
}

type Service struct {
	resumes repository.ResumeRepository
	cache   *cache.Redis
	delay   *latency.Simulator

	now func() time.Time
}

func NewService(resumes repository.ResumeRepository, c *cache.Redis, delay *latency.Simulator) *Service {
	return &Service{resumes: resumes, cache: c, delay: delay, now: time.Now}
}

// Upload validates the declared type against the allow-list and the size
// against the 10 MiB ceiling (inclusive), then appends a Resume carrying a
// snapshot of the uploader. Type is checked before size, so a disallowed
// type is rejected regardless of how large the file is.
func (s *Service) Upload(ctx context.Context, actor user.Snapshot, file FileMeta) (UploadResult, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return UploadResult{}, err
	}

	if !resume.TypeAllowed(file.Type) {
		return UploadResult{}, ErrInvalidFileType
	}
	if file.Size > resume.MaxFileSize {
		return UploadResult{}, ErrFileTooLarge
	}

	rec := resume.Resume{
		ID:         "resume_" + uuid.NewString(),
		FileName:   file.Name,
		FileSize:   file.Size,
		FileType:   file.Type,
		UploadedAt: s.now().UTC(),
		UserID:     actor.ID,
		UserName:   actor.Name,
		UserEmail:  actor.Email,
	}
	if err := s.resumes.Append(ctx, rec); err != nil {
		return UploadResult{}, ErrInternal
	}
	_ = s.cache.InvalidateCollection(ctx, storage.CollectionResumes)

	return UploadResult{ID: rec.ID, Message: "Resume uploaded successfully", Resume: rec}, nil
}

// List is an unconditional full-collection read; per-owner filtering is the
// aggregator's job.
func (s *Service) List(ctx context.Context) ([]resume.Resume, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	key := cache.ListKey(storage.CollectionResumes)
	var cached []resume.Resume
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	resumes, err := s.resumes.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	_ = s.cache.SetJSON(ctx, key, resumes)
	return resumes, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (resume.Resume, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return resume.Resume{}, err
	}

	rec, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return resume.Resume{}, ErrNotFound
		}
		return resume.Resume{}, ErrInternal
	}
	return rec, nil
}
