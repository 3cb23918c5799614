package job

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"talent-match/internal/config"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/user"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/latency"
	"talent-match/internal/repository"
	"talent-match/internal/storage/memory"
)

func newTestService(t *testing.T) (*Service, repository.JobRepository) {
	t.Helper()
	st := memory.New()
	jobs := repository.NewStoreJobRepository(st)
	c := cache.NewRedis(config.RedisConfig{}, nil)
	return NewService(jobs, c, latency.None()), jobs
}

func TestService_UploadByRecruiter(t *testing.T) {
	svc, jobs := newTestService(t)
	ctx := context.Background()
	recruiter := user.Snapshot{ID: "user_r1", Name: "Raka", Role: user.RoleRecruiter}

	res, err := svc.Upload(ctx, recruiter, UploadInput{
		Title:       "Backend Engineer",
		Skills:      []string{"Go", "PostgreSQL", "Go"},
		Experience:  "3+ years",
		Description: "Build services",
		Location:    "Jakarta",
		Salary:      "competitive",
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if res.Job.CreatedBy != recruiter.ID {
		t.Fatalf("expected createdBy %q, got %q", recruiter.ID, res.Job.CreatedBy)
	}
	if want := []string{"Go", "PostgreSQL"}; !reflect.DeepEqual(res.Job.Skills, want) {
		t.Fatalf("expected deduped skills %v, got %v", want, res.Job.Skills)
	}

	all, err := jobs.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 job, got %d", len(all))
	}
}

func TestService_UploadByAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	admin := user.Snapshot{ID: "admin_001", Role: user.RoleAdmin}
	if _, err := svc.Upload(context.Background(), admin, UploadInput{Title: "Ops Lead", Description: "x"}); err != nil {
		t.Fatalf("admin should be allowed to post: %v", err)
	}
}

func TestService_UploadByCandidateForbidden(t *testing.T) {
	svc, jobs := newTestService(t)
	ctx := context.Background()
	candidate := user.Snapshot{ID: "user_c1", Role: user.RoleCandidate}

	_, err := svc.Upload(ctx, candidate, UploadInput{Title: "Sneaky", Description: "x"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	all, err := jobs.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("forbidden upload must not write, got %d jobs", len(all))
	}
}

func TestService_ListTwiceUnchanged(t *testing.T) {
	svc, jobs := newTestService(t)
	ctx := context.Background()

	for _, j := range []job.Job{
		{ID: "job_1", Title: "Backend"},
		{ID: "job_2", Title: "Frontend"},
		{ID: "job_3", Title: "Data"},
	} {
		if err := jobs.Append(ctx, j); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	first, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	second, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("back-to-back reads differ:\n%+v\n%+v", first, second)
	}
	if first[0].ID != "job_1" || first[1].ID != "job_2" || first[2].ID != "job_3" {
		t.Fatalf("insertion order lost: %+v", first)
	}
}

func TestService_ListCacheHitMatchesStore(t *testing.T) {
	srv := miniredis.RunT(t)
	c := cache.NewRedis(config.RedisConfig{Host: srv.Host(), Port: srv.Port()}, nil)
	t.Cleanup(func() { _ = c.Close() })

	st := memory.New()
	jobs := repository.NewStoreJobRepository(st)
	svc := NewService(jobs, c, latency.None())
	ctx := context.Background()

	if err := jobs.Append(ctx, job.Job{ID: "job_1", Title: "Backend", Skills: []string{"Go"}}); err != nil {
		t.Fatalf("append: %v", err)
	}

	fromStore, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	fromCache, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("cached list: %v", err)
	}
	if !reflect.DeepEqual(fromStore, fromCache) {
		t.Fatalf("cache-hit read differs from store read:\n%+v\n%+v", fromStore, fromCache)
	}
}

func TestService_GetByIDNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetByID(context.Background(), "job_missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
