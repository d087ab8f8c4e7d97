package employees

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/seorin-lab/resto-backoffice/pkg/db/models"
	pkgerrors "github.com/seorin-lab/resto-backoffice/pkg/errors"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Service manages the staff roster and the shift schedule, including
// absence handling and replacement suggestions.
type Service interface {
	List(ctx context.Context, includeInactive bool) ([]models.Employee, error)
	Get(ctx context.Context, id int64) (*models.Employee, error)
	Create(ctx context.Context, input EmployeeInput) (int64, error)
	Update(ctx context.Context, id int64, input EmployeeInput) error
	SetActive(ctx context.Context, id int64, active bool) error

	CreateShift(ctx context.Context, input ShiftInput) (int64, error)
	ListShifts(ctx context.Context, startDate, endDate string) ([]models.Shift, error)
	MarkAbsent(ctx context.Context, shiftID int64, replacementID *int64) error
	DeleteShift(ctx context.Context, id int64) error
	ReplacementCandidates(ctx context.Context, shiftID int64) ([]models.Employee, error)
}

// EmployeeInput carries the editable staff fields.
type EmployeeInput struct {
	Name       string
	Role       string
	HourlyWage float64
}

// ShiftInput schedules one work block. HoursWorked, when set, overrides
// the wall-clock span in wage reports.
type ShiftInput struct {
	EmployeeID  int64
	Date        string
	StartTime   string
	EndTime     string
	Role        string
	HoursWorked *float64
}

type service struct {
	repo Repository
}

func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "employees repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, includeInactive bool) ([]models.Employee, error) {
	employees, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing employees")
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	return employees, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Employee, error) {
	employee, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching employee")
	}
	if employee == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "employee not found")
	}
	return employee, nil
}

func validateEmployeeInput(input EmployeeInput) (EmployeeInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Role = strings.TrimSpace(input.Role)
	if input.Name == "" {
		return input, pkgerrors.New(pkgerrors.CodeValidation, "name must not be empty")
	}
	if input.Role == "" {
		return input, pkgerrors.New(pkgerrors.CodeValidation, "role must not be empty")
	}
	if input.HourlyWage <= 0 {
		return input, pkgerrors.New(pkgerrors.CodeValidation, "hourly_wage must be positive")
	}
	return input, nil
}

func (s *service) Create(ctx context.Context, input EmployeeInput) (int64, error) {
	input, err := validateEmployeeInput(input)
	if err != nil {
		return 0, err
	}

	employee := &models.Employee{
		Name:       input.Name,
		Role:       input.Role,
		HourlyWage: input.HourlyWage,
		Active:     true,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating employee")
	}
	return employee.ID, nil
}

func (s *service) Update(ctx context.Context, id int64, input EmployeeInput) error {
	input, err := validateEmployeeInput(input)
	if err != nil {
		return err
	}

	affected, err := s.repo.Update(ctx, id, models.Employee{
		Name:       input.Name,
		Role:       input.Role,
		HourlyWage: input.HourlyWage,
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating employee")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "employee not found")
	}
	return nil
}

func (s *service) SetActive(ctx context.Context, id int64, active bool) error {
	affected, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "toggling employee")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "employee not found")
	}
	return nil
}

// CreateShift validates the schedule block and records it. End before
// start is allowed and treated as an overnight shift by wage math, but
// both times must parse as HH:MM.
func (s *service) CreateShift(ctx context.Context, input ShiftInput) (int64, error) {
	var errs error
	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("date must be YYYY-MM-DD"))
	}
	if _, err := time.Parse(timeLayout, input.StartTime); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("start_time must be HH:MM"))
	}
	if _, err := time.Parse(timeLayout, input.EndTime); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("end_time must be HH:MM"))
	}
	if input.HoursWorked != nil && *input.HoursWorked < 0 {
		errs = multierr.Append(errs, fmt.Errorf("hours_worked must be non-negative"))
	}
	if errs != nil {
		details := make([]string, 0)
		for _, e := range multierr.Errors(errs) {
			details = append(details, e.Error())
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, errs, "invalid shift").WithDetails(details)
	}

	employee, err := s.Get(ctx, input.EmployeeID)
	if err != nil {
		return 0, err
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = employee.Role
	}

	shift := &models.Shift{
		EmployeeID:  input.EmployeeID,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Role:        role,
		HoursWorked: input.HoursWorked,
	}
	if err := s.repo.CreateShift(ctx, shift); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating shift")
	}
	return shift.ID, nil
}

func (s *service) ListShifts(ctx context.Context, startDate, endDate string) ([]models.Shift, error) {
	if _, err := time.Parse(dateLayout, startDate); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "start date must be YYYY-MM-DD")
	}
	if _, err := time.Parse(dateLayout, endDate); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "end date must be YYYY-MM-DD")
	}

	shifts, err := s.repo.ListShifts(ctx, startDate, endDate)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing shifts")
	}
	if shifts == nil {
		shifts = []models.Shift{}
	}
	return shifts, nil
}

// MarkAbsent flags a shift as missed. When a replacement is named they
// must exist and be active; wage reports then pay the replacement.
func (s *service) MarkAbsent(ctx context.Context, shiftID int64, replacementID *int64) error {
	shift, err := s.repo.GetShift(ctx, shiftID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching shift")
	}
	if shift == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "shift not found")
	}

	if replacementID != nil {
		if *replacementID == shift.EmployeeID {
			return pkgerrors.New(pkgerrors.CodeValidation, "replacement must differ from the absent employee")
		}
		replacement, err := s.Get(ctx, *replacementID)
		if err != nil {
			return err
		}
		if !replacement.Active {
			return pkgerrors.New(pkgerrors.CodeValidation, "replacement must be an active employee")
		}
	}

	if _, err := s.repo.MarkAbsent(ctx, shiftID, replacementID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marking shift absent")
	}
	return nil
}

func (s *service) DeleteShift(ctx context.Context, id int64) error {
	affected, err := s.repo.DeleteShift(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting shift")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "shift not found")
	}
	return nil
}

// ReplacementCandidates suggests active employees with the shift's role
// who are neither the absentee nor already working that day.
func (s *service) ReplacementCandidates(ctx context.Context, shiftID int64) ([]models.Employee, error) {
	shift, err := s.repo.GetShift(ctx, shiftID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching shift")
	}
	if shift == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shift not found")
	}

	scheduled, err := s.repo.ScheduledEmployeeIDs(ctx, shift.Date)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking schedule")
	}

	active, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing employees")
	}

	candidates := make([]models.Employee, 0)
	for _, employee := range active {
		if employee.ID == shift.EmployeeID {
			continue
		}
		if shift.Role != "" && employee.Role != shift.Role {
			continue
		}
		if scheduled[employee.ID] {
			continue
		}
		candidates = append(candidates, employee)
	}
	return candidates, nil
}
