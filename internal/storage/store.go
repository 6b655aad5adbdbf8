// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/models"
)

// Sentinel errors implementations wrap so callers can classify failures
// with errors.Is without depending on a concrete backend.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a uniqueness constraint is violated,
	// such as creating two users with the same email.
	ErrDuplicate = errors.New("already exists")
)

// GroupSnapshot is a consistent read of everything balance calculations
// need: the member list in join order and all expenses with their splits,
// oldest first. Both are read inside one transaction so a concurrent
// expense write can never tear the view.
type GroupSnapshot struct {
	Members  []models.User
	Expenses []models.Expense
}

// Store defines the interface for expense tracker storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user. The user.ID field will be populated
	// by the store. Returns ErrDuplicate if the email is already taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by ID. Returns ErrNotFound if missing.
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// ListUsers returns all users, oldest first.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUsersByIDs retrieves the users for the given IDs, in the given
	// order. Returns ErrNotFound if any ID does not exist.
	GetUsersByIDs(ctx context.Context, userIDs []string) ([]models.User, error)

	// CreateGroup persists a new group and its initial members, keeping
	// the member order. The group.ID field will be populated by the store.
	CreateGroup(ctx context.Context, group *models.Group, memberIDs []string) error

	// GetGroup retrieves a group by ID. Returns ErrNotFound if missing.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups returns all groups, oldest first.
	ListGroups(ctx context.Context) ([]models.Group, error)

	// ListGroupMembers returns a group's members in join order.
	ListGroupMembers(ctx context.Context, groupID string) ([]models.User, error)

	// ListGroupIDsByUser returns the IDs of every group the user belongs
	// to, in join order.
	ListGroupIDsByUser(ctx context.Context, userID string) ([]string, error)

	// GroupTotal returns the sum of all expense amounts in a group.
	GroupTotal(ctx context.Context, groupID string) (models.Money, error)

	// CreateExpense persists an expense together with all of its splits
	// in one transaction, so a partially written expense is never
	// observable. The expense and split ID fields will be populated by
	// the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListGroupExpenses returns a group's expenses with their splits,
	// oldest first. Returns ErrNotFound if the group does not exist.
	ListGroupExpenses(ctx context.Context, groupID string) ([]models.Expense, error)

	// GetGroupSnapshot reads a group's members, expenses and splits in a
	// single transaction. Returns ErrNotFound if the group does not exist.
	GetGroupSnapshot(ctx context.Context, groupID string) (*GroupSnapshot, error)

	// Close releases any resources held by the store.
	Close() error
}
