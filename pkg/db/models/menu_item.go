package models

import "time"

// MenuItem is the authoritative record for a sellable dish or drink.
// Items are never hard-deleted; Active=false hides them from recording
// views while keeping historical sales joins intact.
type MenuItem struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Category  string    `gorm:"column:category" json:"category"`
	Price     float64   `gorm:"column:price;not null" json:"price"`
	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	ImagePath *string   `gorm:"column:image_path" json:"image_path"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
