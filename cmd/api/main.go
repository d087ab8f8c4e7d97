package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/seorin-lab/resto-backoffice/api/routes"
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
	"github.com/seorin-lab/resto-backoffice/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if cfg.DB.AutoMigrate {
		sqlDB, err := dbClient.SQLDB()
		if err != nil {
			logg.Error(context.Background(), "failed to access sql handle", err)
			os.Exit(1)
		}
		if err := migrate.Up(context.Background(), sqlDB, cfg.DB.Driver); err != nil {
			logg.Error(context.Background(), "failed to run migrations", err)
			os.Exit(1)
		}
	}

	gdb := dbClient.DB()

	salesSvc, err := sales.NewService(sales.NewRepository(gdb), dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create sales service", err)
		os.Exit(1)
	}
	menuSvc, err := menu.NewService(menu.NewRepository(gdb))
	if err != nil {
		logg.Error(context.Background(), "failed to create menu service", err)
		os.Exit(1)
	}
	settingsSvc, err := settings.NewService(settings.NewRepository(gdb))
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}
	inventorySvc, err := inventory.NewService(inventory.NewRepository(gdb), dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}
	employeesSvc, err := employees.NewService(employees.NewRepository(gdb))
	if err != nil {
		logg.Error(context.Background(), "failed to create employees service", err)
		os.Exit(1)
	}
	wagesSvc, err := wages.NewService(wages.NewRepository(gdb))
	if err != nil {
		logg.Error(context.Background(), "failed to create wages service", err)
		os.Exit(1)
	}
	dashboardSvc, err := dashboard.NewService(salesSvc, inventorySvc, employeesSvc)
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":    cfg.App.Env,
		"addr":   addr,
		"driver": cfg.DB.Driver,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, routes.Services{
			Sales:     salesSvc,
			Menu:      menuSvc,
			Settings:  settingsSvc,
			Inventory: inventorySvc,
			Employees: employeesSvc,
			Wages:     wagesSvc,
			Dashboard: dashboardSvc,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
