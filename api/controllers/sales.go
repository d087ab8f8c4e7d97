package controllers

import (
	"net/http"

	"github.com/seorin-lab/resto-backoffice/api/responses"
	"github.com/seorin-lab/resto-backoffice/api/validators"
	salessvc "github.com/seorin-lab/resto-backoffice/internal/sales"
	pkgerrors "github.com/seorin-lab/resto-backoffice/pkg/errors"
	"github.com/seorin-lab/resto-backoffice/pkg/logger"
)

type recordSalesRequest struct {
	Date string           `json:"date" validate:"required,datetime=2006-01-02"`
	Rows []recordSalesRow `json:"rows" validate:"required,dive"`
}

type recordSalesRow struct {
	MenuItemID  int64 `json:"menu_item_id" validate:"required,gt=0"`
	DineInQty   int   `json:"dine_in_qty" validate:"min=0"`
	DeliveryQty int   `json:"delivery_qty" validate:"min=0"`
}

// RecordSales accepts one day's sales form and persists the non-empty
// rows.
func RecordSales(svc salessvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable"))
			return
		}

		var payload recordSalesRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows := make([]salessvc.BatchRow, 0, len(payload.Rows))
		for _, row := range payload.Rows {
			rows = append(rows, salessvc.BatchRow{
				MenuItemID:  row.MenuItemID,
				DineInQty:   row.DineInQty,
				DeliveryQty: row.DeliveryQty,
			})
		}

		inserted, err := svc.RecordBatch(r.Context(), salessvc.BatchInput{Date: payload.Date, Rows: rows})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"date":     payload.Date,
			"inserted": inserted,
		})
	}
}

// DailyIncome serves the per-day revenue series for an inclusive range.
func DailyIncome(svc salessvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable"))
			return
		}

		start, err := validators.ParseQueryDate(r, "start_date", "")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		end, err := validators.ParseQueryDate(r, "end_date", "")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.DailyIncome(r.Context(), start, end)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

// TopMenuItems serves the best sellers over an inclusive range.
func TopMenuItems(svc salessvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable"))
			return
		}

		start, err := validators.ParseQueryDate(r, "start_date", "")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		end, err := validators.ParseQueryDate(r, "end_date", "")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.TopMenuItems(r.Context(), start, end, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}
