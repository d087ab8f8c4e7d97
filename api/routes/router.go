package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seorin-lab/resto-backoffice/api/controllers"
	"github.com/seorin-lab/resto-backoffice/api/middleware"
	"github.com/seorin-lab/resto-backoffice/internal/dashboard"
	"github.com/seorin-lab/resto-backoffice/internal/employees"
	"github.com/seorin-lab/resto-backoffice/internal/inventory"
	"github.com/seorin-lab/resto-backoffice/internal/menu"
	"github.com/seorin-lab/resto-backoffice/internal/sales"
	"github.com/seorin-lab/resto-backoffice/internal/settings"
	"github.com/seorin-lab/resto-backoffice/internal/wages"
	"github.com/seorin-lab/resto-backoffice/pkg/config"
	"github.com/seorin-lab/resto-backoffice/pkg/db"
	"github.com/seorin-lab/resto-backoffice/pkg/logger"
)

// Services bundles everything the router mounts.
type Services struct {
	Sales     sales.Service
	Menu      menu.Service
	Settings  settings.Service
	Inventory inventory.Service
	Employees employees.Service
	Wages     wages.Service
	Dashboard dashboard.Service
}

func NewRouter(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, svcs Services) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", controllers.Dashboard(svcs.Dashboard, logg))

		r.Route("/sales", func(r chi.Router) {
			r.Post("/", controllers.RecordSales(svcs.Sales, logg))
			r.Get("/daily-income", controllers.DailyIncome(svcs.Sales, logg))
			r.Get("/top-items", controllers.TopMenuItems(svcs.Sales, logg))
		})

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", controllers.ListMenu(svcs.Menu, logg))
			r.Post("/", controllers.CreateMenuItem(svcs.Menu, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.GetMenuItem(svcs.Menu, logg))
				r.Put("/", controllers.UpdateMenuItem(svcs.Menu, logg))
				r.Patch("/active", controllers.SetMenuItemActive(svcs.Menu, logg))
				r.Get("/recipes", controllers.ListRecipes(svcs.Menu, logg))
				r.Post("/recipes", controllers.AddRecipe(svcs.Menu, logg))
			})
			r.Delete("/recipes/{recipeID}", controllers.DeleteRecipe(svcs.Menu, logg))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", controllers.ListInventory(svcs.Inventory, logg))
			r.Post("/", controllers.CreateInventoryItem(svcs.Inventory, logg))
			r.Get("/log", controllers.InventoryLog(svcs.Inventory, logg))
			r.Get("/suggestions", controllers.InventorySuggestions(svcs.Inventory, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", controllers.UpdateInventoryItem(svcs.Inventory, logg))
				r.Delete("/", controllers.DeleteInventoryItem(svcs.Inventory, logg))
				r.Post("/adjust", controllers.AdjustInventory(svcs.Inventory, logg))
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", controllers.ListEmployees(svcs.Employees, logg))
			r.Post("/", controllers.CreateEmployee(svcs.Employees, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", controllers.UpdateEmployee(svcs.Employees, logg))
				r.Patch("/active", controllers.SetEmployeeActive(svcs.Employees, logg))
			})
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", controllers.ListShifts(svcs.Employees, logg))
			r.Post("/", controllers.CreateShift(svcs.Employees, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", controllers.DeleteShift(svcs.Employees, logg))
				r.Post("/absent", controllers.MarkShiftAbsent(svcs.Employees, logg))
				r.Get("/replacements", controllers.ReplacementCandidates(svcs.Employees, logg))
			})
		})

		r.Get("/wages", controllers.WageReport(svcs.Wages, logg))

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", controllers.GetSettings(svcs.Settings, logg))
			r.Put("/", controllers.UpdateSettings(svcs.Settings, logg))
			r.Put("/language", controllers.SetLanguage(svcs.Settings, logg))
			r.Get("/translations", controllers.Translations(svcs.Settings, logg))
		})
	})

	return r
}
