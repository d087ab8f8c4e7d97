package dashboard

import (
	"context"
	"time"

	"github.com/seorin-lab/resto-backoffice/internal/employees"
	"github.com/seorin-lab/resto-backoffice/internal/inventory"
	"github.com/seorin-lab/resto-backoffice/internal/sales"
	pkgerrors "github.com/seorin-lab/resto-backoffice/pkg/errors"
)

const (
	incomeWindowDays = 7
	topItemsCount    = 5
)

// Summary is the landing-page snapshot: a week of income, the
// best-selling items over that week, and two operational counters.
type Summary struct {
	Date            string              `json:"date"`
	Income          []sales.DailyIncome `json:"income"`
	TopItems        []sales.TopMenuItem `json:"top_items"`
	LowStockCount   int                 `json:"low_stock_count"`
	ActiveEmployees int                 `json:"active_employees"`
}

type Service interface {
	Summary(ctx context.Context, date string) (*Summary, error)
}

type service struct {
	sales     sales.Service
	inventory inventory.Service
	employees employees.Service
}

func NewService(salesSvc sales.Service, inventorySvc inventory.Service, employeesSvc employees.Service) (Service, error) {
	if salesSvc == nil || inventorySvc == nil || employeesSvc == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "dashboard requires sales, inventory and employees services")
	}
	return &service{sales: salesSvc, inventory: inventorySvc, employees: employeesSvc}, nil
}

// Summary builds the snapshot for the seven days ending on date. An
// empty date means today.
func (s *service) Summary(ctx context.Context, date string) (*Summary, error) {
	if date == "" {
		date = time.Now().Format(sales.DateLayout)
	}
	end, err := time.Parse(sales.DateLayout, date)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "date must be YYYY-MM-DD")
	}
	start := end.AddDate(0, 0, -(incomeWindowDays - 1)).Format(sales.DateLayout)

	income, err := s.sales.DailyIncome(ctx, start, date)
	if err != nil {
		return nil, err
	}
	topItems, err := s.sales.TopMenuItems(ctx, start, date, topItemsCount)
	if err != nil {
		return nil, err
	}
	suggestions, err := s.inventory.Suggestions(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.employees.List(ctx, false)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Date:            date,
		Income:          income,
		TopItems:        topItems,
		LowStockCount:   len(suggestions),
		ActiveEmployees: len(active),
	}, nil
}
