package models

import "time"

// InventoryItem tracks one ingredient: its current stock level and the
// minimum level below which a reorder suggestion fires.
type InventoryItem struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	Category   string    `gorm:"column:category" json:"category"`
	Unit       string    `gorm:"column:unit;not null" json:"unit"`
	CurrentQty float64   `gorm:"column:current_qty;not null;default:0" json:"current_qty"`
	MinQty     float64   `gorm:"column:min_qty;not null;default:0" json:"min_qty"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
