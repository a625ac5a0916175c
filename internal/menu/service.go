package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cafedelight/menu-backend/internal/domain"
	"github.com/cafedelight/menu-backend/internal/events"
	"github.com/cafedelight/menu-backend/internal/logger"
	"github.com/cafedelight/menu-backend/internal/repo/postgres"
)

// Service implements the menu catalog operations. Read operations are
// public; mutations are reached only through the admin authorization gate.
type Service struct {
	repo      postgres.MenuRepo
	publisher events.Publisher
}

func NewService(repo postgres.MenuRepo, pub events.Publisher) *Service {
	return &Service{repo: repo, publisher: pub}
}

func (s *Service) ListAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.ListAvailable(ctx)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *Service) ListSpecials(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.ListSpecials(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Create(ctx context.Context, req *domain.CreateMenuItemRequest) (*domain.MenuItem, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item := &domain.MenuItem{
		ID:          uuid.NewString(),
		Category:    req.Category,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		IsSpecial:   false,
		Available:   true,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	if req.IsSpecial != nil {
		item.IsSpecial = *req.IsSpecial
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.publish(ctx, events.MenuItemCreated, item)
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, patch *domain.UpdateMenuItemRequest) (*domain.MenuItem, error) {
	patch.Normalize()
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		item, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load menu item: %w", err)
		}
		if item == nil {
			return nil, fmt.Errorf("%w: menu item %s", domain.ErrNotFound, id)
		}
		return item, nil
	}

	item, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %s", domain.ErrNotFound, id)
	}

	s.publish(ctx, events.MenuItemUpdated, item)
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: menu item %s", domain.ErrNotFound, id)
	}

	s.publish(ctx, events.MenuItemDeleted, map[string]string{"id": id})
	return nil
}

func (s *Service) ToggleSpecial(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := s.repo.ToggleSpecial(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle special: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %s", domain.ErrNotFound, id)
	}

	s.publish(ctx, events.MenuItemSpecialToggled, item)
	return item, nil
}

func (s *Service) ToggleAvailable(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := s.repo.ToggleAvailable(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle availability: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %s", domain.ErrNotFound, id)
	}

	s.publish(ctx, events.MenuItemAvailableToggled, item)
	return item, nil
}

func (s *Service) publish(ctx context.Context, subject string, data interface{}) {
	if err := s.publisher.Publish(ctx, subject, data); err != nil {
		logger.WarnContext(ctx, "failed to publish menu event", "subject", subject, "error", err)
	}
}
