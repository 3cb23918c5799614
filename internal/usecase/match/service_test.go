package match

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/config"
	"talent-match/internal/domain/match"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/latency"
	"talent-match/internal/repository"
	"talent-match/internal/storage/memory"
)

func newTestService(t *testing.T, seed []match.Match) *Service {
	t.Helper()
	st := memory.New()
	matches := repository.NewStoreMatchRepository(st)
	if err := matches.ReplaceAll(context.Background(), seed); err != nil {
		t.Fatalf("seed matches: %v", err)
	}
	c := cache.NewRedis(config.RedisConfig{}, nil)
	return NewService(matches, c, latency.None())
}

func TestService_ListByJobFilters(t *testing.T) {
	svc := newTestService(t, []match.Match{
		{ID: "match_1", JobID: "job_a", CandidateID: "c1", MatchScore: 90},
		{ID: "match_2", JobID: "job_b", CandidateID: "c1", MatchScore: 72},
		{ID: "match_3", JobID: "job_a", CandidateID: "c2", MatchScore: 55},
	})
	ctx := context.Background()

	byJob, err := svc.ListByJob(ctx, "job_a")
	if err != nil {
		t.Fatalf("list by job: %v", err)
	}
	if len(byJob) != 2 {
		t.Fatalf("expected 2 matches for job_a, got %d", len(byJob))
	}

	// Empty filter means the full collection.
	all, err := svc.ListByJob(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(all))
	}
}

func TestService_GetByID(t *testing.T) {
	svc := newTestService(t, []match.Match{{ID: "match_1", MatchScore: 88}})
	ctx := context.Background()

	m, err := svc.GetByID(ctx, "match_1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m.MatchScore != 88 {
		t.Fatalf("unexpected score %d", m.MatchScore)
	}

	if _, err := svc.GetByID(ctx, "match_missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
