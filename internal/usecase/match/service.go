package match

import (
	"context"
	"errors"

	"talent-match/internal/domain/match"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/latency"
	"talent-match/internal/repository"
	"talent-match/internal/storage"
)

var (
	ErrNotFound = errors.New("match not found")
	ErrInternal = errors.New("internal error")
)

// Matches are pre-seeded external data; this service only reads. Nothing
// here computes a score from a job/resume pair.
type MatchUsecase interface {
	List(ctx context.Context) ([]match.Match, error)
	ListByJob(ctx context.Context, jobID string) ([]match.Match, error)
	GetByID(ctx context.Context, id string) (match.Match, error)
}

type Service struct {
	matches repository.MatchRepository
	cache   *cache.Redis
	delay   *latency.Simulator
}

func NewService(matches repository.MatchRepository, c *cache.Redis, delay *latency.Simulator) *Service {
	return &Service{matches: matches, cache: c, delay: delay}
}

func (s *Service) List(ctx context.Context) ([]match.Match, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	key := cache.ListKey(storage.CollectionMatches)
	var cached []match.Match
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	matches, err := s.matches.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	_ = s.cache.SetJSON(ctx, key, matches)
	return matches, nil
}

func (s *Service) ListByJob(ctx context.Context, jobID string) ([]match.Match, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if jobID == "" {
		return all, nil
	}
	out := make([]match.Match, 0, len(all))
	for _, m := range all {
		if m.JobID == jobID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (match.Match, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return match.Match{}, err
	}

	m, err := s.matches.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return match.Match{}, ErrNotFound
		}
		return match.Match{}, ErrInternal
	}
	return m, nil
}
