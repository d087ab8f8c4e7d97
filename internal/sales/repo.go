package sales

import (
	"context"

	"gorm.io/gorm"

	"github.com/seorin-lab/resto-backoffice/pkg/db/models"
)

// Repository exposes persistence for the sales ledger. The ledger is
// append-only: there are no update or delete operations.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	InsertRecords(ctx context.Context, records []models.SalesRecord) error
	DailyIncome(ctx context.Context, startDate, endDate string) ([]DailyIncome, error)
	TopMenuItems(ctx context.Context, startDate, endDate string, limit int) ([]TopMenuItem, error)
	ExistingMenuItemIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a sales ledger repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) InsertRecords(ctx context.Context, records []models.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

// DailyIncome prices ledger rows through the catalog join. Deactivated
// items still join, so historical days keep their revenue.
func (r *repository) DailyIncome(ctx context.Context, startDate, endDate string) ([]DailyIncome, error) {
	var rows []DailyIncome
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.date AS date,
			SUM((s.dine_in_qty + s.delivery_qty) * m.price) AS total_income,
			SUM(s.dine_in_qty * m.price) AS dine_in_income,
			SUM(s.delivery_qty * m.price) AS delivery_income
		FROM sales_log s
		JOIN menu_items m ON m.id = s.menu_item_id
		WHERE s.date BETWEEN ? AND ?
		GROUP BY s.date
		ORDER BY s.date ASC`,
		startDate, endDate,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TopMenuItems ranks by quantity; equal quantities tie-break on revenue
// then id so the ordering is deterministic across stores.
func (r *repository) TopMenuItems(ctx context.Context, startDate, endDate string, limit int) ([]TopMenuItem, error) {
	var rows []TopMenuItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			m.id AS menu_item_id,
			m.name AS name,
			SUM(s.dine_in_qty + s.delivery_qty) AS total_qty,
			SUM((s.dine_in_qty + s.delivery_qty) * m.price) AS total_revenue
		FROM sales_log s
		JOIN menu_items m ON m.id = s.menu_item_id
		WHERE s.date BETWEEN ? AND ?
		GROUP BY m.id, m.name
		ORDER BY total_qty DESC, total_revenue DESC, m.id ASC
		LIMIT ?`,
		startDate, endDate, limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ExistingMenuItemIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	existing := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}
	var found []int64
	err := r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}
