package store

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Afzalshaikh78/ImageGenerator/internal/model"
	apierrors "github.com/Afzalshaikh78/ImageGenerator/pkg/errors"
)

// memoryStore is an in-memory Factory used in tests.
type memoryStore struct {
	mu      sync.RWMutex
	byID    map[string]*model.User
	byEmail map[string]string
}

// NewMemoryFactory creates an in-memory store factory.
func NewMemoryFactory() Factory {
	return &memoryStore{
		byID:    make(map[string]*model.User),
		byEmail: make(map[string]string),
	}
}

func (m *memoryStore) Users() UserStore { return m }

func (m *memoryStore) Close() error { return nil }

func (m *memoryStore) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[user.Email]; ok {
		return apierrors.ErrUserExists
	}

	now := time.Now().Unix()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	clone := *user
	m.byID[user.ID.Hex()] = &clone
	m.byEmail[user.Email] = user.ID.Hex()
	return nil
}

func (m *memoryStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return nil, apierrors.ErrUserNotFound
	}
	clone := *m.byID[id]
	return &clone, nil
}

func (m *memoryStore) GetByID(_ context.Context, id string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.byID[id]
	if !ok {
		return nil, apierrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *memoryStore) DeductCredits(_ context.Context, id string, amount int) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.byID[id]
	if !ok {
		return nil, apierrors.ErrUserNotFound
	}
	if user.CreditBalance < amount {
		return nil, apierrors.ErrNoCredits
	}

	user.CreditBalance -= amount
	user.UpdatedAt = time.Now().Unix()
	clone := *user
	return &clone, nil
}
