package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/models"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/storage"
)

// GroupService manages groups and their memberships.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// Create makes a new group with the given members. Every user ID must
// exist; duplicates are collapsed keeping the first occurrence, which
// fixes the member order used by balance reports.
func (s *GroupService) Create(ctx context.Context, name string, userIDs []string) (*models.GroupDetails, error) {
	slog.Info("CreateGroup request received", "name", name, "members_count", len(userIDs))

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("group name is required: %w", ErrInvalidInput)
	}

	memberIDs := dedupe(userIDs)
	if len(memberIDs) == 0 {
		return nil, fmt.Errorf("group needs at least one member: %w", ErrInvalidInput)
	}

	users, err := s.store.GetUsersByIDs(ctx, memberIDs)
	if err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, err
	}

	group := &models.Group{Name: name}
	if err := s.store.CreateGroup(ctx, group, memberIDs); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, err
	}

	slog.Info("Group created", "group_id", group.ID, "members_count", len(memberIDs))

	return &models.GroupDetails{Group: *group, Users: users}, nil
}

// Get retrieves a group with its members and expense total.
func (s *GroupService) Get(ctx context.Context, groupID string) (*models.GroupDetails, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", groupID, "error", err)
		return nil, err
	}

	return s.details(ctx, *group)
}

// List retrieves all groups with their members and expense totals.
func (s *GroupService) List(ctx context.Context) ([]models.GroupDetails, error) {
	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, err
	}

	details := make([]models.GroupDetails, 0, len(groups))
	for _, group := range groups {
		d, err := s.details(ctx, group)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}

	return details, nil
}

// details resolves a group's members and expense total.
func (s *GroupService) details(ctx context.Context, group models.Group) (*models.GroupDetails, error) {
	users, err := s.store.ListGroupMembers(ctx, group.ID)
	if err != nil {
		slog.Error("ListGroupMembers failed", "group_id", group.ID, "error", err)
		return nil, err
	}

	total, err := s.store.GroupTotal(ctx, group.ID)
	if err != nil {
		slog.Error("GroupTotal failed", "group_id", group.ID, "error", err)
		return nil, err
	}

	return &models.GroupDetails{Group: group, Users: users, TotalExpenses: total}, nil
}

// dedupe removes repeated IDs, keeping the first occurrence of each.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
