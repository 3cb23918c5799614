package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/user"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/latency"
	"talent-match/internal/repository"
	"talent-match/internal/storage"
)

var (
	ErrForbidden = errors.New("role not allowed to post jobs")
	ErrNotFound  = errors.New("job not found")
	ErrInternal  = errors.New("internal error")
)

// UploadInput carries the posting form fields. Title/description presence is
// validated by the caller before the facade is invoked.
type UploadInput struct {
	Title       string   `json:"title"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Salary      string   `json:"salary"`
}

type UploadResult struct {
	ID      string  `json:"id"`
	Message string  `json:"message"`
	Job     job.Job `json:"job"`
}

type JobUsecase interface {
	Upload(ctx context.Context, actor user.Snapshot, in UploadInput) (UploadResult, error)
	List(ctx context.Context) ([]job.Job, error)
	GetByID(ctx context.Context, id string) (job.Job, error)
}

type Service struct {
	jobs  repository.JobRepository
	cache *cache.Redis
	delay *latency.Simulator

	now func() time.Time
}

func NewService(jobs repository.JobRepository, c *cache.Redis, delay *latency.Simulator) *Service {
	return &Service{jobs: jobs, cache: c, delay: delay, now: time.Now}
}

// Upload is a role-scoped write: only recruiters and admins post jobs, and
// the check lives here rather than in the route guard so no caller can
// bypass it.
func (s *Service) Upload(ctx context.Context, actor user.Snapshot, in UploadInput) (UploadResult, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return UploadResult{}, err
	}

	if !actor.Role.CanAccess(user.RoleRecruiter) {
		return UploadResult{}, ErrForbidden
	}

	j := job.Job{
		ID:          "job_" + uuid.NewString(),
		Title:       in.Title,
		Skills:      job.DedupeSkills(in.Skills),
		Experience:  in.Experience,
		Description: in.Description,
		Location:    in.Location,
		Salary:      in.Salary,
		CreatedAt:   s.now().UTC(),
		CreatedBy:   actor.ID,
	}
	if err := s.jobs.Append(ctx, j); err != nil {
		return UploadResult{}, ErrInternal
	}
	_ = s.cache.InvalidateCollection(ctx, storage.CollectionJobs)

	return UploadResult{ID: j.ID, Message: "Job posted successfully", Job: j}, nil
}

func (s *Service) List(ctx context.Context) ([]job.Job, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	key := cache.ListKey(storage.CollectionJobs)
	var cached []job.Job
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	_ = s.cache.SetJSON(ctx, key, jobs)
	return jobs, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (job.Job, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return job.Job{}, err
	}

	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}
