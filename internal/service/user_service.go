package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dinedir/internal/cache"
	"dinedir/internal/errors"
	"dinedir/internal/model"
	"dinedir/internal/repository"
)

const (
	bcryptCost   = 10
	userCacheTTL = 5 * time.Minute
)

// UserService handles registration and user lookups. Role is fixed at
// creation: the public paths yield a plain user or a pending owner,
// admin creation is reserved for admin callers at the route level.
type UserService interface {
	CreateUser(ctx context.Context, email, password, username string) (*model.User, error)
	CreateOwner(ctx context.Context, email, password, username string) (*model.User, error)
	CreateAdmin(ctx context.Context, email, password, username string) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// CreateUser registers a plain user with active status.
func (s *userService) CreateUser(ctx context.Context, email, password, username string) (*model.User, error) {
	return s.create(ctx, email, password, username, model.RoleUser, "active")
}

// CreateOwner registers a restaurant owner. Owners start pending until approved.
func (s *userService) CreateOwner(ctx context.Context, email, password, username string) (*model.User, error) {
	return s.create(ctx, email, password, username, model.RoleOwner, "pending")
}

// CreateAdmin registers an admin account.
func (s *userService) CreateAdmin(ctx context.Context, email, password, username string) (*model.User, error) {
	return s.create(ctx, email, password, username, model.RoleAdmin, "active")
}

func (s *userService) create(ctx context.Context, email, password, username string, role model.Role, status string) (*model.User, error) {
	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check email: %w", err)
	}

	if existing, err := s.repo.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, errors.ErrUsernameTaken
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         role,
		Status:       status,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// GetUser retrieves a user by ID with caching.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
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
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
