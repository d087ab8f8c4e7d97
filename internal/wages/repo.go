package wages

import (
	"context"

	"gorm.io/gorm"
)

// shiftRow is one shift joined with the wage rate of whoever actually
// worked it: the replacement when one is booked, the scheduled employee
// otherwise.
type shiftRow struct {
	ShiftID       int64    `gorm:"column:shift_id"`
	Date          string   `gorm:"column:date"`
	StartTime     string   `gorm:"column:start_time"`
	EndTime       string   `gorm:"column:end_time"`
	IsAbsent      bool     `gorm:"column:is_absent"`
	ReplacementID *int64   `gorm:"column:replacement_id"`
	HoursWorked   *float64 `gorm:"column:hours_worked"`
	WorkerID      int64    `gorm:"column:worker_id"`
	WorkerName    string   `gorm:"column:worker_name"`
	HourlyWage    float64  `gorm:"column:hourly_wage"`
}

type Repository interface {
	ShiftsWithRates(ctx context.Context, startDate, endDate string) ([]shiftRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const shiftsWithRatesQuery = `
SELECT
  s.id             AS shift_id,
  s.date           AS date,
  s.start_time     AS start_time,
  s.end_time       AS end_time,
  s.is_absent      AS is_absent,
  s.replacement_id AS replacement_id,
  s.hours_worked   AS hours_worked,
  w.id             AS worker_id,
  w.name           AS worker_name,
  w.hourly_wage    AS hourly_wage
FROM shifts s
JOIN employees w ON w.id = COALESCE(s.replacement_id, s.employee_id)
WHERE s.date BETWEEN ? AND ?
ORDER BY s.date ASC, s.id ASC`

func (r *repository) ShiftsWithRates(ctx context.Context, startDate, endDate string) ([]shiftRow, error) {
	var rows []shiftRow
	err := r.db.WithContext(ctx).
		Raw(shiftsWithRatesQuery, startDate, endDate).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
