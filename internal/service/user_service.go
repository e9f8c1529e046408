package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/karolbystrek/Todo-Rails-Elite/internal/domain"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/service/auth"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/store"
)

// UserService provides user CRUD operations with password hashing at
// registration time.
type UserService interface {
	// AddUser creates a new user. The role is forced to "USER" and the
	// plaintext password is replaced with its one-way hash before the
	// user is persisted. Returns store.ErrUsernameExists or
	// store.ErrEmailExists if either unique field is already taken.
	AddUser(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetUserByUsername retrieves a user by their username.
	// Returns store.ErrUserNotFound if absent.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetUserByEmail retrieves a user by their email address. The email
	// must be non-blank and well-formed.
	// Returns store.ErrUserNotFound if absent.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetUserByID retrieves a user by their ID.
	// Returns store.ErrUserNotFound if absent.
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// UpdateUser persists the given user as-is after confirming a user
	// with that username exists. The password is not re-hashed here.
	// Returns store.ErrUserNotFound if the username is absent.
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)

	// DeleteUser removes the user with the given user's username.
	// Returns store.ErrUserNotFound if the username is absent.
	DeleteUser(ctx context.Context, user *domain.User) error

	// GetAllUsers returns all users. Unlike tasks, an empty user set is
	// an error: returns store.ErrUserNotFound when no users exist.
	GetAllUsers(ctx context.Context) ([]*domain.User, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewUserService creates a new UserService backed by the given store and
// password hasher.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	log *slog.Logger,
) *UserServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		logger:    log.With(slog.String("component", "user_service")),
	}
}

// AddUser implements UserService.AddUser
func (s *UserServiceImpl) AddUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		s.logger.Warn("user validation failed",
			slog.String("error", err.Error()))
		return nil, err
	}
	if user.Password == "" {
		return nil, domain.ErrEmptyPassword
	}

	_, err := s.userStore.GetByUsername(ctx, user.Username)
	if err == nil {
		s.logger.Debug("attempted to add user with existing username",
			slog.String("username", user.Username))
		return nil, fmt.Errorf("user with username '%s' already exists: %w",
			user.Username, store.ErrUsernameExists)
	}
	if !store.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to check for existing username: %w", err)
	}

	_, err = s.userStore.GetByEmail(ctx, user.Email)
	if err == nil {
		s.logger.Debug("attempted to add user with existing email",
			slog.String("email", user.Email))
		return nil, fmt.Errorf("user with email '%s' already exists: %w",
			user.Email, store.ErrEmailExists)
	}
	if !store.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to check for existing email: %w", err)
	}

	user.Roles = domain.DefaultRole

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.userStore.Save(ctx, user); err != nil {
		s.logger.Error("failed to save user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))
	return user, nil
}

// GetUserByUsername implements UserService.GetUserByUsername
func (s *UserServiceImpl) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, domain.NewValidationError("username", "cannot be blank", nil)
	}

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("user not found with username '%s': %w", username, err)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// GetUserByEmail implements UserService.GetUserByEmail
func (s *UserServiceImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, domain.NewValidationError("email", "cannot be blank", nil)
	}
	if !domain.ValidEmail(email) {
		return nil, domain.ErrInvalidEmail
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("user not found with email '%s': %w", email, err)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// GetUserByID implements UserService.GetUserByID
func (s *UserServiceImpl) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "cannot be empty", domain.ErrInvalidID)
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("user not found with id %s: %w", id, err)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// UpdateUser implements UserService.UpdateUser
// The given user is persisted as-is after the existence check; in
// particular the password hash is written through unchanged.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		s.logger.Warn("user validation failed",
			slog.String("error", err.Error()))
		return nil, err
	}

	_, err := s.userStore.GetByUsername(ctx, user.Username)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("attempted to update non-existent user",
				slog.String("username", user.Username))
			return nil, fmt.Errorf("user not found with username '%s': %w", user.Username, err)
		}
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	if err := s.userStore.Save(ctx, user); err != nil {
		s.logger.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("user updated",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))
	return user, nil
}

// DeleteUser implements UserService.DeleteUser
func (s *UserServiceImpl) DeleteUser(ctx context.Context, user *domain.User) error {
	if user == nil || user.Username == "" {
		return domain.NewValidationError("username", "cannot be blank", nil)
	}

	existing, err := s.userStore.GetByUsername(ctx, user.Username)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("attempted to delete non-existent user",
				slog.String("username", user.Username))
			return fmt.Errorf("user not found with username '%s': %w", user.Username, err)
		}
		return fmt.Errorf("failed to check for existing user: %w", err)
	}

	if err := s.userStore.Delete(ctx, existing.ID); err != nil {
		s.logger.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted",
		slog.String("user_id", existing.ID.String()),
		slog.String("username", existing.Username))
	return nil
}

// GetAllUsers implements UserService.GetAllUsers
// An empty user set is reported as not found, unlike the task listing.
func (s *UserServiceImpl) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("no users found: %w", store.ErrUserNotFound)
	}

	return users, nil
}
