package repository

import (
	"context"
	"errors"

	"talent-match/internal/domain/user"
	"talent-match/internal/storage"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	List(ctx context.Context) ([]user.User, error)
	GetByID(ctx context.Context, id string) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Append(ctx context.Context, u user.User) error
	// ReplaceByEmail drops every record holding the email, then appends u.
	// Used to keep the reserved admin record a singleton across logins.
	ReplaceByEmail(ctx context.Context, email string, u user.User) error
	ReplaceAll(ctx context.Context, users []user.User) error
	Count(ctx context.Context) (int, error)
}

type StoreUserRepository struct {
	store storage.Store
}

func NewStoreUserRepository(st storage.Store) *StoreUserRepository {
	return &StoreUserRepository{store: st}
}

func (r *StoreUserRepository) List(ctx context.Context) ([]user.User, error) {
	return readCollection[user.User](ctx, r.store, storage.CollectionUsers)
}

func (r *StoreUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return user.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, ErrUserNotFound
}

// GetByEmail matches case-exact, as stored.
func (r *StoreUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return user.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, ErrUserNotFound
}

func (r *StoreUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *StoreUserRepository) Append(ctx context.Context, u user.User) error {
	return appendRecord(ctx, r.store, storage.CollectionUsers, u)
}

func (r *StoreUserRepository) ReplaceByEmail(ctx context.Context, email string, u user.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := make([]user.User, 0, len(users)+1)
	for _, existing := range users {
		if existing.Email == email {
			continue
		}
		kept = append(kept, existing)
	}
	kept = append(kept, u)
	return writeCollection(ctx, r.store, storage.CollectionUsers, kept)
}

func (r *StoreUserRepository) ReplaceAll(ctx context.Context, users []user.User) error {
	return writeCollection(ctx, r.store, storage.CollectionUsers, users)
}

func (r *StoreUserRepository) Count(ctx context.Context) (int, error) {
	return countCollection(ctx, r.store, storage.CollectionUsers)
}
