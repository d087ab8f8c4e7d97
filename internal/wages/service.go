package wages

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/seorin-lab/resto-backoffice/pkg/errors"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// EmployeeWage is one worker's total over the report range.
type EmployeeWage struct {
	EmployeeID int64   `json:"employee_id"`
	Name       string  `json:"name"`
	TotalHours float64 `json:"total_hours"`
	TotalWage  float64 `json:"total_wage"`
	ShiftCount int     `json:"shift_count"`
}

// Report is the wage summary for an inclusive date range.
type Report struct {
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Employees []EmployeeWage `json:"employees"`
	TotalWage float64        `json:"total_wage"`
}

type Service interface {
	Calculate(ctx context.Context, startDate, endDate string) (*Report, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "wages repository required")
	}
	return &service{repo: repo}, nil
}

// Calculate totals hours and pay per worker over the range. An absent
// shift with no replacement pays nobody. Pay accrues to whoever worked
// the shift, at their own hourly rate. Money math runs on decimals and
// rounds half-up to cents only at the end.
func (s *service) Calculate(ctx context.Context, startDate, endDate string) (*Report, error) {
	if _, err := time.Parse(dateLayout, startDate); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "start date must be YYYY-MM-DD")
	}
	if _, err := time.Parse(dateLayout, endDate); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "end date must be YYYY-MM-DD")
	}

	rows, err := s.repo.ShiftsWithRates(ctx, startDate, endDate)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading shifts")
	}

	type accumulator struct {
		name  string
		hours decimal.Decimal
		wage  decimal.Decimal
		count int
	}
	totals := make(map[int64]*accumulator)
	order := make([]int64, 0)

	for _, row := range rows {
		if row.IsAbsent && row.ReplacementID == nil {
			continue
		}

		hours, err := shiftHours(row)
		if err != nil {
			return nil, err
		}

		acc, ok := totals[row.WorkerID]
		if !ok {
			acc = &accumulator{name: row.WorkerName}
			totals[row.WorkerID] = acc
			order = append(order, row.WorkerID)
		}
		acc.hours = acc.hours.Add(hours)
		acc.wage = acc.wage.Add(hours.Mul(decimal.NewFromFloat(row.HourlyWage)))
		acc.count++
	}

	report := &Report{
		StartDate: startDate,
		EndDate:   endDate,
		Employees: make([]EmployeeWage, 0, len(order)),
	}
	grand := decimal.Zero
	for _, id := range order {
		acc := totals[id]
		rounded := acc.wage.Round(2)
		grand = grand.Add(rounded)
		report.Employees = append(report.Employees, EmployeeWage{
			EmployeeID: id,
			Name:       acc.name,
			TotalHours: acc.hours.Round(2).InexactFloat64(),
			TotalWage:  rounded.InexactFloat64(),
			ShiftCount: acc.count,
		})
	}
	report.TotalWage = grand.InexactFloat64()
	return report, nil
}

// shiftHours resolves the paid span of one shift: the explicit override
// when present, otherwise the wall-clock gap. An end at or before the
// start wraps to the next day.
func shiftHours(row shiftRow) (decimal.Decimal, error) {
	if row.HoursWorked != nil {
		return decimal.NewFromFloat(*row.HoursWorked), nil
	}

	start, err := time.Parse(timeLayout, row.StartTime)
	if err != nil {
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "stored start_time is malformed")
	}
	end, err := time.Parse(timeLayout, row.EndTime)
	if err != nil {
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "stored end_time is malformed")
	}

	minutes := end.Sub(start).Minutes()
	if minutes <= 0 {
		minutes += 24 * 60
	}
	return decimal.NewFromFloat(minutes).Div(decimal.NewFromInt(60)), nil
}
