package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// MemoryRepository keeps users in process memory behind a single mutex.
// Contents are lost on restart.
type MemoryRepository struct {
	mu      sync.Mutex
	byEmail map[string]*User
	nextID  int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byEmail: make(map[string]*User),
		nextID:  1,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := &User{
		ID:           r.nextID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now(),
	}
	r.nextID++
	r.byEmail[stored.Email] = stored

	out := *stored
	return &out, nil
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := *stored
	return &out, nil
}
