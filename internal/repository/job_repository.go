package repository

import (
	"context"
	"errors"

	"talent-match/internal/domain/job"
	"talent-match/internal/storage"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	List(ctx context.Context) ([]job.Job, error)
	GetByID(ctx context.Context, id string) (job.Job, error)
	Append(ctx context.Context, j job.Job) error
	ReplaceAll(ctx context.Context, jobs []job.Job) error
	Count(ctx context.Context) (int, error)
}

type StoreJobRepository struct {
	store storage.Store
}

func NewStoreJobRepository(st storage.Store) *StoreJobRepository {
	return &StoreJobRepository{store: st}
}

func (r *StoreJobRepository) List(ctx context.Context) ([]job.Job, error) {
	return readCollection[job.Job](ctx, r.store, storage.CollectionJobs)
}

func (r *StoreJobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	jobs, err := r.List(ctx)
	if err != nil {
		return job.Job{}, err
	}
	for _, j := range jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, ErrJobNotFound
}

func (r *StoreJobRepository) Append(ctx context.Context, j job.Job) error {
	return appendRecord(ctx, r.store, storage.CollectionJobs, j)
}

func (r *StoreJobRepository) ReplaceAll(ctx context.Context, jobs []job.Job) error {
	return writeCollection(ctx, r.store, storage.CollectionJobs, jobs)
}

func (r *StoreJobRepository) Count(ctx context.Context) (int, error) {
	return countCollection(ctx, r.store, storage.CollectionJobs)
}
