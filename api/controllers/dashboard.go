package controllers

import (
	"net/http"
	"strings"

	"github.com/seorin-lab/resto-backoffice/api/responses"
	"github.com/seorin-lab/resto-backoffice/api/validators"
	dashboardsvc "github.com/seorin-lab/resto-backoffice/internal/dashboard"
	pkgerrors "github.com/seorin-lab/resto-backoffice/pkg/errors"
	"github.com/seorin-lab/resto-backoffice/pkg/logger"
)

// Dashboard serves the landing-page summary. An optional date query
// anchors the seven-day window; it defaults to today.
func Dashboard(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		date := strings.TrimSpace(r.URL.Query().Get("date"))
		if date != "" {
			if _, err := validators.ParseQueryDate(r, "date", ""); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		summary, err := svc.Summary(r.Context(), date)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}
