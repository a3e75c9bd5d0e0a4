package memory

import (
	"context"
	"fmt"

	"github.com/tempora-hq/timesheet-backend/internal/apperrors"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
)

// UserRepository stores users in memory.
type UserRepository struct {
	store *Store
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) SaveUser(_ context.Context, user domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.UserID == user.UserID {
			return fmt.Errorf("%w: user %s", apperrors.ErrDuplicate, user.UserID)
		}
	}
	r.store.users = append(r.store.users, user)
	return nil
}

func (r *UserRepository) UpdateUser(_ context.Context, user domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.users {
		if r.store.users[i].UserID == user.UserID {
			r.store.users[i] = user
			return nil
		}
	}
	return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, user.UserID)
}

func (r *UserRepository) DeleteUser(_ context.Context, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.users {
		if r.store.users[i].UserID == userID {
			r.store.users = append(r.store.users[:i], r.store.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
}

func (r *UserRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.UserID == userID {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindUsers(_ context.Context) ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	users := make([]domain.User, len(r.store.users))
	copy(users, r.store.users)
	return users, nil
}
