package models

import "time"

// Employee is a member of staff. Soft-deleted via Active like menu items
// so historical shifts and wage reports keep resolving.
type Employee struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	Role       string    `gorm:"column:role;not null" json:"role"`
	HourlyWage float64   `gorm:"column:hourly_wage;not null" json:"hourly_wage"`
	Active     bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
