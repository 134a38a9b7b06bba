package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/metlab/inventory/internal/store"
	"github.com/metlab/inventory/types"
	"go.uber.org/zap"
)

const userDeletedMessage = "user deleted successfully"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("role must be admin or user")
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (types.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	List(ctx context.Context) ([]types.User, error)
	DeleteUnlessLastAdmin(ctx context.Context, id int64) error
}

// UserService is the credential store and authenticator.
type UserService struct {
	repo   UserRepository
	hasher *PasswordHasher
	logger *zap.Logger
	now    func() time.Time
}

func NewUserService(repo UserRepository, hasher *PasswordHasher, logger *zap.Logger) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
		now:    time.Now,
	}
}

// CreateUser registers an account. It returns false without writing anything
// when the username is already taken.
func (s *UserService) CreateUser(ctx context.Context, input types.NewUser) (bool, error) {
	role := input.Role
	if role == "" {
		role = types.RoleUser
	}
	if role != types.RoleAdmin && role != types.RoleUser {
		return false, ErrInvalidRole
	}

	exists, err := s.repo.Exists(ctx, input.Username)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	if exists {
		s.logger.Info("username already taken", zap.String("username", input.Username))
		return false, nil
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, types.User{
		Username:     input.Username,
		PasswordHash: digest,
		Email:        input.Email,
		Role:         role,
		CreatedAt:    s.now().Format(types.CreatedAtLayout),
	})
	if err != nil {
		return false, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user created",
		zap.Int64("id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", user.Role),
	)
	return true, nil
}

// Authenticate returns the identity of the account when the password matches.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (types.UserInfo, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("authentication failed", zap.String("username", username))
			return types.UserInfo{}, ErrInvalidCredentials
		}
		return types.UserInfo{}, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Warn("authentication failed", zap.String("username", username))
		return types.UserInfo{}, ErrInvalidCredentials
	}

	return types.UserInfo{ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// DeleteUser removes an account. It fails with store.ErrLastAdmin when the
// account is the only admin left.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (string, error) {
	if err := s.repo.DeleteUnlessLastAdmin(ctx, id); err != nil {
		if errors.Is(err, store.ErrLastAdmin) {
			s.logger.Warn("refused to delete last admin", zap.Int64("id", id))
			return "", err
		}
		return "", fmt.Errorf("failed to delete user: %w", err)
	}
	s.logger.Info("user deleted", zap.Int64("id", id))
	return userDeletedMessage, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]types.User, error) {
	return s.repo.List(ctx)
}

// HasUsers reports whether any account exists; an empty store needs a
// first admin before anything else.
func (s *UserService) HasUsers(ctx context.Context) (bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
