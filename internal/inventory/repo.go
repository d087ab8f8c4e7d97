package inventory

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/seorin-lab/resto-backoffice/pkg/db/models"
)

// Repository persists ingredients and their movement log. Stock level
// changes happen through AdjustQuantity so current_qty always moves by
// the logged delta rather than being overwritten.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context) ([]models.InventoryItem, error)
	Get(ctx context.Context, id int64) (*models.InventoryItem, error)
	Create(ctx context.Context, item *models.InventoryItem) error
	Update(ctx context.Context, id int64, item models.InventoryItem) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	AdjustQuantity(ctx context.Context, id int64, delta float64) (int64, error)
	AppendLog(ctx context.Context, entry *models.InventoryAdjustment) error
	ListLog(ctx context.Context, ingredientID int64, limit int) ([]models.InventoryAdjustment, error)
	BelowMinimum(ctx context.Context) ([]models.InventoryItem, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) List(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) Create(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) Update(ctx context.Context, id int64, item models.InventoryItem) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":     item.Name,
			"category": item.Category,
			"unit":     item.Unit,
			"min_qty":  item.MinQty,
		})
	return result.RowsAffected, result.Error
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.InventoryItem{})
	return result.RowsAffected, result.Error
}

func (r *repository) AdjustQuantity(ctx context.Context, id int64, delta float64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("id = ?", id).
		Update("current_qty", gorm.Expr("current_qty + ?", delta))
	return result.RowsAffected, result.Error
}

func (r *repository) AppendLog(ctx context.Context, entry *models.InventoryAdjustment) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) ListLog(ctx context.Context, ingredientID int64, limit int) ([]models.InventoryAdjustment, error) {
	query := r.db.WithContext(ctx).Model(&models.InventoryAdjustment{})
	if ingredientID > 0 {
		query = query.Where("ingredient_id = ?", ingredientID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []models.InventoryAdjustment
	err := query.Order("id DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) BelowMinimum(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).
		Where("current_qty < min_qty").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
