package menu

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/seorin-lab/resto-backoffice/pkg/db/models"
)

// Repository exposes persistence for the menu catalog and its recipes.
// Update and SetActive report rows affected so callers can distinguish
// a no-op on a missing id from a real write.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context, includeInactive bool) ([]models.MenuItem, error)
	Get(ctx context.Context, id int64) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, id int64, item models.MenuItem) (int64, error)
	SetActive(ctx context.Context, id int64, active bool) (int64, error)

	ListRecipes(ctx context.Context, menuItemID int64) ([]models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *models.Recipe) error
	DeleteRecipe(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) List(ctx context.Context, includeInactive bool) ([]models.MenuItem, error) {
	query := r.db.WithContext(ctx).Model(&models.MenuItem{})
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var items []models.MenuItem
	if err := query.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) Create(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) Update(ctx context.Context, id int64, item models.MenuItem) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":       item.Name,
			"category":   item.Category,
			"price":      item.Price,
			"image_path": item.ImagePath,
		})
	return result.RowsAffected, result.Error
}

func (r *repository) SetActive(ctx context.Context, id int64, active bool) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id = ?", id).
		Update("active", active)
	return result.RowsAffected, result.Error
}

func (r *repository) ListRecipes(ctx context.Context, menuItemID int64) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.WithContext(ctx).
		Where("menu_item_id = ?", menuItemID).
		Order("id ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *repository) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *repository) DeleteRecipe(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Recipe{})
	return result.RowsAffected, result.Error
}
