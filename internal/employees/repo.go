package employees

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/seorin-lab/resto-backoffice/pkg/db/models"
)

// Repository persists staff records and their scheduled shifts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context, includeInactive bool) ([]models.Employee, error)
	Get(ctx context.Context, id int64) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, id int64, employee models.Employee) (int64, error)
	SetActive(ctx context.Context, id int64, active bool) (int64, error)

	CreateShift(ctx context.Context, shift *models.Shift) error
	GetShift(ctx context.Context, id int64) (*models.Shift, error)
	ListShifts(ctx context.Context, startDate, endDate string) ([]models.Shift, error)
	MarkAbsent(ctx context.Context, id int64, replacementID *int64) (int64, error)
	DeleteShift(ctx context.Context, id int64) (int64, error)
	ScheduledEmployeeIDs(ctx context.Context, date string) (map[int64]bool, error)
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

func (r *repository) List(ctx context.Context, includeInactive bool) ([]models.Employee, error) {
	query := r.db.WithContext(ctx).Model(&models.Employee{})
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var employees []models.Employee
	if err := query.Order("id ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *repository) Create(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *repository) Update(ctx context.Context, id int64, employee models.Employee) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        employee.Name,
			"role":        employee.Role,
			"hourly_wage": employee.HourlyWage,
		})
	return result.RowsAffected, result.Error
}

func (r *repository) SetActive(ctx context.Context, id int64, active bool) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", id).
		Update("active", active)
	return result.RowsAffected, result.Error
}

func (r *repository) CreateShift(ctx context.Context, shift *models.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *repository) GetShift(ctx context.Context, id int64) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&shift).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *repository) ListShifts(ctx context.Context, startDate, endDate string) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Order("date ASC, start_time ASC, id ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *repository) MarkAbsent(ctx context.Context, id int64, replacementID *int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Shift{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_absent":      true,
			"replacement_id": replacementID,
		})
	return result.RowsAffected, result.Error
}

func (r *repository) DeleteShift(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Shift{})
	return result.RowsAffected, result.Error
}

// ScheduledEmployeeIDs reports everyone unavailable on the date:
// scheduled employees, booked replacements, and absentees, who are out
// for the whole day.
func (r *repository) ScheduledEmployeeIDs(ctx context.Context, date string) (map[int64]bool, error) {
	var shifts []models.Shift
	err := r.db.WithContext(ctx).
		Select("employee_id", "replacement_id").
		Where("date = ?", date).
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}

	scheduled := make(map[int64]bool, len(shifts))
	for _, shift := range shifts {
		scheduled[shift.EmployeeID] = true
		if shift.ReplacementID != nil {
			scheduled[*shift.ReplacementID] = true
		}
	}
	return scheduled, nil
}
