package models

import "time"

// SalesRecord is one row in the append-only sales ledger: how many units
// of a menu item were sold through each channel on a calendar day. The
// same (date, item) pair may appear multiple times; aggregation sums
// across all matching rows. Records are never updated or deleted.
type SalesRecord struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Date        string    `gorm:"column:date;not null;index" json:"date"`
	MenuItemID  int64     `gorm:"column:menu_item_id;not null" json:"menu_item_id"`
	DineInQty   int       `gorm:"column:dine_in_qty;not null;default:0" json:"dine_in_qty"`
	DeliveryQty int       `gorm:"column:delivery_qty;not null;default:0" json:"delivery_qty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SalesRecord) TableName() string {
	return "sales_log"
}
