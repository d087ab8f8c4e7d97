package models

import "time"

// InventoryAdjustment is one entry in the stock movement log. Change is
// signed: positive for deliveries, negative for usage or waste.
type InventoryAdjustment struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IngredientID int64     `gorm:"column:ingredient_id;not null;index" json:"ingredient_id"`
	Date         string    `gorm:"column:date;not null" json:"date"`
	Change       float64   `gorm:"column:change;not null" json:"change"`
	Note         string    `gorm:"column:note" json:"note"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (InventoryAdjustment) TableName() string {
	return "inventory_log"
}
