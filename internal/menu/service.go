package menu

import (
	"context"
	"strings"

	"github.com/seorin-lab/resto-backoffice/pkg/db/models"
	pkgerrors "github.com/seorin-lab/resto-backoffice/pkg/errors"
)

// Service defines catalog operations. The catalog enforces its own
// invariants (non-empty name, positive price) instead of trusting the
// recording handler to have validated input.
type Service interface {
	List(ctx context.Context, includeInactive bool) ([]models.MenuItem, error)
	Get(ctx context.Context, id int64) (*models.MenuItem, error)
	Create(ctx context.Context, input CreateInput) (int64, error)
	Update(ctx context.Context, id int64, input UpdateInput) error
	SetActive(ctx context.Context, id int64, active bool) error

	ListRecipes(ctx context.Context, menuItemID int64) ([]models.Recipe, error)
	AddRecipe(ctx context.Context, menuItemID int64, input RecipeInput) (int64, error)
	DeleteRecipe(ctx context.Context, id int64) error
}

// CreateInput carries the fields for a new menu item. Active always
// starts true.
type CreateInput struct {
	Name      string
	Category  string
	Price     float64
	ImagePath *string
}

// UpdateInput is a full-field update of an existing item.
type UpdateInput struct {
	Name      string
	Category  string
	Price     float64
	ImagePath *string
}

// RecipeInput links an ingredient with the amount used per serving.
type RecipeInput struct {
	IngredientID int64
	Quantity     float64
	Unit         string
}

type service struct {
	repo Repository
}

// NewService wires the catalog dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "menu repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, includeInactive bool) ([]models.MenuItem, error) {
	items, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing menu items")
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching menu item")
	}
	if item == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
	}
	return item, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (int64, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "name must not be empty")
	}
	if input.Price <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}

	item := &models.MenuItem{
		Name:      name,
		Category:  strings.TrimSpace(input.Category),
		Price:     input.Price,
		Active:    true,
		ImagePath: input.ImagePath,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating menu item")
	}
	return item.ID, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name must not be empty")
	}
	if input.Price <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}

	affected, err := s.repo.Update(ctx, id, models.MenuItem{
		Name:      name,
		Category:  strings.TrimSpace(input.Category),
		Price:     input.Price,
		ImagePath: input.ImagePath,
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating menu item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
	}
	return nil
}

func (s *service) SetActive(ctx context.Context, id int64, active bool) error {
	affected, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "toggling menu item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
	}
	return nil
}

func (s *service) ListRecipes(ctx context.Context, menuItemID int64) ([]models.Recipe, error) {
	if _, err := s.Get(ctx, menuItemID); err != nil {
		return nil, err
	}
	recipes, err := s.repo.ListRecipes(ctx, menuItemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing recipes")
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}

func (s *service) AddRecipe(ctx context.Context, menuItemID int64, input RecipeInput) (int64, error) {
	if _, err := s.Get(ctx, menuItemID); err != nil {
		return 0, err
	}
	if input.IngredientID <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "ingredient_id is required")
	}
	if input.Quantity <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	unit := strings.TrimSpace(input.Unit)
	if unit == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "unit must not be empty")
	}

	recipe := &models.Recipe{
		MenuItemID:   menuItemID,
		IngredientID: input.IngredientID,
		Quantity:     input.Quantity,
		Unit:         unit,
	}
	if err := s.repo.CreateRecipe(ctx, recipe); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating recipe")
	}
	return recipe.ID, nil
}

func (s *service) DeleteRecipe(ctx context.Context, id int64) error {
	affected, err := s.repo.DeleteRecipe(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting recipe")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "recipe not found")
	}
	return nil
}
