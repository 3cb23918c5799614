package repository

import (
	"context"
	"errors"

	"talent-match/internal/domain/resume"
	"talent-match/internal/storage"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	List(ctx context.Context) ([]resume.Resume, error)
	GetByID(ctx context.Context, id string) (resume.Resume, error)
	Append(ctx context.Context, r resume.Resume) error
	ReplaceAll(ctx context.Context, resumes []resume.Resume) error
	Count(ctx context.Context) (int, error)
}

type StoreResumeRepository struct {
	store storage.Store
}

func NewStoreResumeRepository(st storage.Store) *StoreResumeRepository {
	return &StoreResumeRepository{store: st}
}

func (r *StoreResumeRepository) List(ctx context.Context) ([]resume.Resume, error) {
	return readCollection[resume.Resume](ctx, r.store, storage.CollectionResumes)
}

func (r *StoreResumeRepository) GetByID(ctx context.Context, id string) (resume.Resume, error) {
	resumes, err := r.List(ctx)
	if err != nil {
		return resume.Resume{}, err
	}
	for _, rec := range resumes {
		if rec.ID == id {
			return rec, nil
		}
	}
	return resume.Resume{}, ErrResumeNotFound
}

func (r *StoreResumeRepository) Append(ctx context.Context, rec resume.Resume) error {
	return appendRecord(ctx, r.store, storage.CollectionResumes, rec)
}

func (r *StoreResumeRepository) ReplaceAll(ctx context.Context, resumes []resume.Resume) error {
	return writeCollection(ctx, r.store, storage.CollectionResumes, resumes)
}

func (r *StoreResumeRepository) Count(ctx context.Context) (int, error) {
	return countCollection(ctx, r.store, storage.CollectionResumes)
}
