package repository

import (
	"context"
	"errors"

	"talent-match/internal/domain/match"
	"talent-match/internal/storage"
)

var ErrMatchNotFound = errors.New("match not found")

// MatchRepository is read-only from the facade's perspective; ReplaceAll
// exists for the seeder, which owns the dataset.
type MatchRepository interface {
	List(ctx context.Context) ([]match.Match, error)
	GetByID(ctx context.Context, id string) (match.Match, error)
	ReplaceAll(ctx context.Context, matches []match.Match) error
	Count(ctx context.Context) (int, error)
}

type StoreMatchRepository struct {
	store storage.Store
}

func NewStoreMatchRepository(st storage.Store) *StoreMatchRepository {
	return &StoreMatchRepository{store: st}
}

func (r *StoreMatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return readCollection[match.Match](ctx, r.store, storage.CollectionMatches)
}

func (r *StoreMatchRepository) GetByID(ctx context.Context, id string) (match.Match, error) {
	matches, err := r.List(ctx)
	if err != nil {
		return match.Match{}, err
	}
	for _, m := range matches {
		if m.ID == id {
			return m, nil
		}
	}
	return match.Match{}, ErrMatchNotFound
}

func (r *StoreMatchRepository) ReplaceAll(ctx context.Context, matches []match.Match) error {
	return writeCollection(ctx, r.store, storage.CollectionMatches, matches)
}

func (r *StoreMatchRepository) Count(ctx context.Context) (int, error) {
	return countCollection(ctx, r.store, storage.CollectionMatches)
}
