package admin

import (
	"context"
	"errors"

	"talent-match/internal/domain/user"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/latency"
	"talent-match/internal/repository"
	"talent-match/internal/views"
)

var ErrInternal = errors.New("internal error")

// Stats reports true counts. Empty collections report zero: the original's
// fabricated non-zero fallbacks were a display lie and are gone.
type Stats struct {
	TotalUsers   int `json:"totalUsers"`
	TotalJobs    int `json:"totalJobs"`
	TotalResumes int `json:"totalResumes"`
	TotalMatches int `json:"totalMatches"`
}

type AdminUsecase interface {
	DashboardStats(ctx context.Context) (Stats, error)
	Users(ctx context.Context) ([]user.Snapshot, error)
	RecentActivity(ctx context.Context, perSource, limit int) ([]views.Activity, error)
}

type Service struct {
	users   repository.UserRepository
	jobs    repository.JobRepository
	resumes repository.ResumeRepository
	matches repository.MatchRepository
	cache   *cache.Redis
	delay   *latency.Simulator
}

func NewService(
	users repository.UserRepository,
	jobs repository.JobRepository,
	resumes repository.ResumeRepository,
	matches repository.MatchRepository,
	c *cache.Redis,
	delay *latency.Simulator,
) *Service {
	return &Service{users: users, jobs: jobs, resumes: resumes, matches: matches, cache: c, delay: delay}
}

func (s *Service) DashboardStats(ctx context.Context) (Stats, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return Stats{}, err
	}

	var cached Stats
	if hit, err := s.cache.GetJSON(ctx, cache.KeyStats, &cached); err == nil && hit {
		return cached, nil
	}

	var st Stats
	var err error
	if st.TotalUsers, err = s.users.Count(ctx); err != nil {
		return Stats{}, ErrInternal
	}
	if st.TotalJobs, err = s.jobs.Count(ctx); err != nil {
		return Stats{}, ErrInternal
	}
	if st.TotalResumes, err = s.resumes.Count(ctx); err != nil {
		return Stats{}, ErrInternal
	}
	if st.TotalMatches, err = s.matches.Count(ctx); err != nil {
		return Stats{}, ErrInternal
	}

	_ = s.cache.SetJSON(ctx, cache.KeyStats, st)
	return st, nil
}

// Users lists every account as a password-free snapshot.
func (s *Service) Users(ctx context.Context) ([]user.Snapshot, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	all, err := s.users.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]user.Snapshot, 0, len(all))
	for _, u := range all {
		out = append(out, u.Snapshot())
	}
	return out, nil
}

// RecentActivity merges the newest registrations, postings and uploads into
// one time-ordered feed.
func (s *Service) RecentActivity(ctx context.Context, perSource, limit int) ([]views.Activity, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	resumes, err := s.resumes.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	return views.RecentActivity(users, jobs, resumes, perSource, limit), nil
}
