package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskboard/internal/cache"
	"taskboard/internal/errors"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// ProfileCache defines the cache operations the services use.
type ProfileCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Ensure the redis-backed client implements ProfileCache
var _ ProfileCache = (*cache.Client)(nil)

func profileCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// UserService exposes profile reads. Profiles are served read-through
// from the cache; the client keeps a denormalized copy and refetches it
// via /auth/me on login.
type UserService interface {
	GetProfile(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache ProfileCache
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache ProfileCache) UserService {
	return &userService{repo: repo, cache: cache}
}

// GetProfile retrieves a user by ID with caching.
func (s *userService) GetProfile(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, profileCacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, profileCacheKey(id), payload, profileCacheTTL)
	}
	return user, nil
}
