package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/models"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/storage"
)

// defaultUsers are seeded at startup so a fresh install has people to
// build groups from.
var defaultUsers = []string{
	"You",
	"Alice Johnson",
	"Bob Smith",
	"Charlie Brown",
	"David Wilson",
	"Eve Davis",
	"Frank Miller",
	"Grace Lee",
}

// UserService manages user accounts.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// Create registers a new user. The email must not be in use.
func (s *UserService) Create(ctx context.Context, name, email string) (*models.User, error) {
	slog.Info("CreateUser request received", "name", name)

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if email == "" {
		return nil, fmt.Errorf("email is required: %w", ErrInvalidInput)
	}

	user := &models.User{Name: name, Email: email}
	if err := s.store.CreateUser(ctx, user); err != nil {
		slog.Error("CreateUser failed", "error", err)
		return nil, err
	}

	slog.Info("User created", "user_id", user.ID)
	return user, nil
}

// List retrieves all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		slog.Error("ListUsers failed", "error", err)
		return nil, err
	}
	return users, nil
}

// EnsureDefaultUsers seeds the default user set. Users that already exist
// (matched by email) are left alone, so the call is safe on every startup.
func (s *UserService) EnsureDefaultUsers(ctx context.Context) error {
	created := 0
	for _, name := range defaultUsers {
		email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"
		err := s.store.CreateUser(ctx, &models.User{Name: name, Email: email})
		if errors.Is(err, storage.ErrDuplicate) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", name, err)
		}
		created++
	}

	if created > 0 {
		slog.Info("Seeded default users", "count", created)
	}
	return nil
}
