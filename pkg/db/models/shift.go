package models

import "time"

// Shift is one scheduled work block. Start/End are wall-clock "HH:MM"
// strings on the given date. HoursWorked, when set, overrides the
// wall-clock span for wage purposes. When a shift is marked absent a
// replacement employee may be recorded; wages then accrue to the
// replacement rather than the absentee.
type Shift struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EmployeeID    int64     `gorm:"column:employee_id;not null;index" json:"employee_id"`
	Date          string    `gorm:"column:date;not null;index" json:"date"`
	StartTime     string    `gorm:"column:start_time;not null" json:"start_time"`
	EndTime       string    `gorm:"column:end_time;not null" json:"end_time"`
	Role          string    `gorm:"column:role" json:"role"`
	IsAbsent      bool      `gorm:"column:is_absent;not null;default:false" json:"is_absent"`
	ReplacementID *int64    `gorm:"column:replacement_id" json:"replacement_id"`
	HoursWorked   *float64  `gorm:"column:hours_worked" json:"hours_worked"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
