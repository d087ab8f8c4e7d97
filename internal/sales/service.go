package sales

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/seorin-lab/resto-backoffice/pkg/db/models"
	pkgerrors "github.com/seorin-lab/resto-backoffice/pkg/errors"
)

// DateLayout is the calendar-day form used across the ledger.
const DateLayout = "2006-01-02"

const defaultTopItemsLimit = 10

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines ledger-level operations: batch recording plus the two
// range aggregations consumed by the income pages.
type Service interface {
	RecordBatch(ctx context.Context, input BatchInput) (int, error)
	DailyIncome(ctx context.Context, startDate, endDate string) ([]DailyIncome, error)
	TopMenuItems(ctx context.Context, startDate, endDate string, limit int) ([]TopMenuItem, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService wires the sales ledger dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "sales repository required")
	}
	if tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// RecordBatch validates and persists one day's sales form. Rows with
// both quantities at zero are dropped before insertion, so an all-zero
// submission is a no-op. The surviving rows are written in a single
// transaction and become visible to aggregation reads only once that
// transaction commits. Returns the number of rows persisted.
// Malformed quantities are rejected, never coerced to zero.
func (s *service) RecordBatch(ctx context.Context, input BatchInput) (int, error) {
	if _, err := time.Parse(DateLayout, input.Date); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "date must be YYYY-MM-DD")
	}

	var rowErrs error
	for i, row := range input.Rows {
		if row.MenuItemID <= 0 {
			rowErrs = multierr.Append(rowErrs, fmt.Errorf("row %d: menu_item_id is required", i))
		}
		if row.DineInQty < 0 || row.DeliveryQty < 0 {
			rowErrs = multierr.Append(rowErrs, fmt.Errorf("row %d: quantities must be non-negative", i))
		}
	}
	if rowErrs != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, rowErrs, "invalid sales rows").
			WithDetails(errorStrings(rowErrs))
	}

	records := make([]models.SalesRecord, 0, len(input.Rows))
	for _, row := range input.Rows {
		if row.DineInQty == 0 && row.DeliveryQty == 0 {
			continue
		}
		records = append(records, models.SalesRecord{
			Date:        input.Date,
			MenuItemID:  row.MenuItemID,
			DineInQty:   row.DineInQty,
			DeliveryQty: row.DeliveryQty,
		})
	}
	if len(records) == 0 {
		return 0, nil
	}

	ids := make([]int64, 0, len(records))
	seen := make(map[int64]bool, len(records))
	for _, rec := range records {
		if !seen[rec.MenuItemID] {
			seen[rec.MenuItemID] = true
			ids = append(ids, rec.MenuItemID)
		}
	}
	existing, err := s.repo.ExistingMenuItemIDs(ctx, ids)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking menu items")
	}
	var refErrs error
	for _, id := range ids {
		if !existing[id] {
			refErrs = multierr.Append(refErrs, fmt.Errorf("menu item %d does not exist", id))
		}
	}
	if refErrs != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, refErrs, "unknown menu items").
			WithDetails(errorStrings(refErrs))
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).InsertRecords(ctx, records)
	})
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "recording sales batch")
	}
	return len(records), nil
}

// DailyIncome returns the inclusive-range revenue series, ascending by
// date. A start after the end naturally yields an empty series.
func (s *service) DailyIncome(ctx context.Context, startDate, endDate string) ([]DailyIncome, error) {
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}
	rows, err := s.repo.DailyIncome(ctx, startDate, endDate)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregating daily income")
	}
	if rows == nil {
		rows = []DailyIncome{}
	}
	return rows, nil
}

func (s *service) TopMenuItems(ctx context.Context, startDate, endDate string, limit int) ([]TopMenuItem, error) {
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTopItemsLimit
	}
	rows, err := s.repo.TopMenuItems(ctx, startDate, endDate, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregating top menu items")
	}
	if rows == nil {
		rows = []TopMenuItem{}
	}
	return rows, nil
}

func validateRange(startDate, endDate string) error {
	if _, err := time.Parse(DateLayout, startDate); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "start date must be YYYY-MM-DD")
	}
	if _, err := time.Parse(DateLayout, endDate); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "end date must be YYYY-MM-DD")
	}
	return nil
}

func errorStrings(err error) []string {
	errs := multierr.Errors(err)
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}
