package service

import (
	"context"
	"log/slog"

	"github.com/nestlist/nestlist/internal/models"
	"github.com/nestlist/nestlist/internal/storage"
)

// ListService implements list operations with ownership enforcement.
type ListService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewListService creates a new ListService with the given storage backend.
func NewListService(store storage.Store, logger *slog.Logger) *ListService {
	return &ListService{store: store, logger: logger}
}

// Create persists a new list owned by the given user.
// List names are not required to be unique.
func (s *ListService) Create(ctx context.Context, ownerID, name string) (*models.List, error) {
	list := &models.List{
		Name:   name,
		UserID: ownerID,
	}

	if err := s.store.CreateList(ctx, list); err != nil {
		s.logger.Error("CreateList failed", "user_id", ownerID, "error", err)
		return nil, err
	}

	s.logger.Info("List created", "list_id", list.ID, "user_id", ownerID)
	return list, nil
}

// Lists returns all lists owned by the given user.
func (s *ListService) Lists(ctx context.Context, ownerID string) ([]*models.List, error) {
	return s.store.ListsByUser(ctx, ownerID)
}

// Get retrieves a list, enforcing ownership. Returns storage.ErrNotFound if
// the list does not exist and ErrForbidden if it belongs to another user.
func (s *ListService) Get(ctx context.Context, ownerID, listID string) (*models.List, error) {
	list, err := s.store.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list.UserID != ownerID {
		s.logger.Warn("List access denied", "list_id", listID, "user_id", ownerID)
		return nil, ErrForbidden
	}
	return list, nil
}

// Delete removes a list and all of its tasks. The store guarantees the list
// and its tasks disappear in one atomic unit; a partial delete is never
// observable.
func (s *ListService) Delete(ctx context.Context, ownerID, listID string) error {
	if _, err := s.Get(ctx, ownerID, listID); err != nil {
		return err
	}

	if err := s.store.DeleteList(ctx, listID); err != nil {
		s.logger.Error("DeleteList failed", "list_id", listID, "error", err)
		return err
	}

	s.logger.Info("List deleted", "list_id", listID, "user_id", ownerID)
	return nil
}
