package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/vedran77/skillswap/internal/domain"
)

// UserRepo is the in-process roster. Insertion order is preserved so the
// directory always lists members in the order they were added.
type UserRepo struct {
	mu    sync.RWMutex
	order []uuid.UUID
	users map[uuid.UUID]*domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := cloneUser(user)
	if _, ok := r.users[u.ID]; !ok {
		r.order = append(r.order, u.ID)
	}
	r.users[u.ID] = u
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, *cloneUser(r.users[id]))
	}
	return users, nil
}

// cloneUser copies the record so callers can't mutate the stored one
// through the returned pointer.
func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.SkillsOffered = append([]string(nil), u.SkillsOffered...)
	c.SkillsWanted = append([]string(nil), u.SkillsWanted...)
	c.Availability = append([]string(nil), u.Availability...)
	return &c
}
