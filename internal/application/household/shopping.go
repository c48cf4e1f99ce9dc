// Package household provides the application layer for the shopping list,
// tasks, calendar, family roster, health charts and the dashboard.
package household

import (
	"context"
	"sync"

	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/domain/shopping"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/hearthhq/hearth/pkg/errors"
	"go.uber.org/zap"
)

// ShoppingService implements the shopping list use cases
type ShoppingService struct {
	repo   outbound.ShoppingRepository
	logger *zap.Logger

	mu sync.Mutex
}

var _ inbound.ShoppingService = (*ShoppingService)(nil)

// NewShoppingService creates a new shopping service
func NewShoppingService(repo outbound.ShoppingRepository, logger *zap.Logger) *ShoppingService {
	return &ShoppingService{repo: repo, logger: logger.Named("shopping-service")}
}

// List returns the items of category, or all items for "" and "All"
func (s *ShoppingService) List(ctx context.Context, category string) ([]inbound.ShoppingItemDTO, error) {
	list, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.NewStorageError("load shopping list", err)
	}
	return toItemDTOs(list.Filter(category)), nil
}

// Add appends one item
func (s *ShoppingService) Add(ctx context.Context, cmd inbound.AddShoppingItemCommand) (*inbound.ShoppingItemDTO, error) {
	var added shopping.Item
	err := s.mutate(ctx, func(list *shopping.List) error {
		item, err := list.Add(shopping.Item{
			Name:     cmd.Name,
			Category: shopping.Category(cmd.Category),
			Quantity: cmd.Quantity,
			Unit:     recipe.Unit(cmd.Unit),
			Note:     cmd.Note,
		})
		added = item
		return err
	})
	if err != nil {
		return nil, translate(err, nil, nil)
	}

	s.logger.Info("Shopping item added", zap.Int("item_id", added.ID), zap.String("name", added.Name))
	dto := toItemDTO(added)
	return &dto, nil
}

// AddIngredients appends one Groceries item per ingredient
func (s *ShoppingService) AddIngredients(ctx context.Context, recipeID string, ingredients []recipe.Ingredient) ([]inbound.ShoppingItemDTO, error) {
	var added []shopping.Item
	err := s.mutate(ctx, func(list *shopping.List) error {
		added = list.AddIngredients(recipeID, ingredients)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemDTOs(added), nil
}

// Toggle flips an item's completed flag
func (s *ShoppingService) Toggle(ctx context.Context, id int) (*inbound.ShoppingItemDTO, error) {
	var toggled shopping.Item
	err := s.mutate(ctx, func(list *shopping.List) error {
		item, err := list.Toggle(id)
		toggled = item
		return err
	})
	if err != nil {
		return nil, translate(err, shopping.ErrItemNotFound, func() error { return errors.NewItemNotFoundError(id) })
	}
	dto := toItemDTO(toggled)
	return &dto, nil
}

// Delete removes an item
func (s *ShoppingService) Delete(ctx context.Context, id int) error {
	err := s.mutate(ctx, func(list *shopping.List) error {
		return list.Delete(id)
	})
	return translate(err, shopping.ErrItemNotFound, func() error { return errors.NewItemNotFoundError(id) })
}

func (s *ShoppingService) mutate(ctx context.Context, fn func(*shopping.List) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.repo.Load(ctx)
	if err != nil {
		return errors.NewStorageError("load shopping list", err)
	}
	if err := fn(list); err != nil {
		return err
	}
	if err := s.repo.Store(ctx, list); err != nil {
		return errors.NewStorageError("store shopping list", err)
	}
	return nil
}

func toItemDTO(it shopping.Item) inbound.ShoppingItemDTO {
	return inbound.ShoppingItemDTO{
		ID:        it.ID,
		Name:      it.Name,
		Label:     it.Label(),
		Category:  string(it.Category),
		Completed: it.Completed,
		Quantity:  it.Quantity,
		Unit:      string(it.Unit),
		Note:      it.Note,
		RecipeID:  it.RecipeID,
	}
}

func toItemDTOs(items []shopping.Item) []inbound.ShoppingItemDTO {
	out := make([]inbound.ShoppingItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toItemDTO(it))
	}
	return out
}
