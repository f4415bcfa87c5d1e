package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/inorbit/internal/config"
	"github.com/templui/inorbit/internal/db"
	"github.com/templui/inorbit/internal/repository"
	"github.com/templui/inorbit/internal/service"
)

type App struct {
	Cfg                      *config.Config
	DB                       *sqlx.DB
	GoalRepository           repository.GoalRepository
	GoalCompletionRepository repository.GoalCompletionRepository
	GoalService              *service.GoalService
	ExportService            *service.ExportService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.AutoMigrate {
		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return NewWithDB(cfg, database), nil
}

// NewWithDB wires repositories and services around an already opened database.
func NewWithDB(cfg *config.Config, database *sqlx.DB) *App {
	// Repositories
	goalRepository := repository.NewGoalRepository(database)
	goalCompletionRepository := repository.NewGoalCompletionRepository(database)

	// Services
	goalService := service.NewGoalService(goalRepository, goalCompletionRepository, cfg.WeekStart, cfg.Location)
	exportService := service.NewExportService(goalService)

	return &App{
		Cfg:                      cfg,
		DB:                       database,
		GoalRepository:           goalRepository,
		GoalCompletionRepository: goalCompletionRepository,
		GoalService:              goalService,
		ExportService:            exportService,
	}
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
