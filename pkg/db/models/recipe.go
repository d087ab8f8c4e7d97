package models

// Recipe links a menu item to one inventory ingredient with the amount
// consumed per serving.
type Recipe struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MenuItemID   int64   `gorm:"column:menu_item_id;not null;index" json:"menu_item_id"`
	IngredientID int64   `gorm:"column:ingredient_id;not null" json:"ingredient_id"`
	Quantity     float64 `gorm:"column:quantity;not null" json:"quantity"`
	Unit         string  `gorm:"column:unit;not null" json:"unit"`
}
