package app

import (
	"fmt"

	"worktime/internal/config"
	"worktime/internal/database"
	"worktime/internal/logger"
	"worktime/internal/password"
	"worktime/internal/repository"
	"worktime/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App открытая база и собранные поверх нее сервисы
type App struct {
	Config   *config.Config
	Logger   *logrus.Logger
	DB       *gorm.DB
	Hasher   password.Hasher
	Services service.Services
}

// New открывает базу, создает таблицы и роли и собирает сервисы
func New(cfg *config.Config, log *logrus.Logger) (*App, error) {
	if log == nil {
		log = logger.New(cfg.LogLevel)
	}

	hasher, err := password.New(cfg.PasswordHasher)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.DatabaseURL, log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	if err := database.EnsureRoles(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("ensure roles: %w", err)
	}

	log.WithField("database", cfg.DatabaseURL).Debug("Database ready")

	return &App{
		Config:   cfg,
		Logger:   log,
		DB:       db,
		Hasher:   hasher,
		Services: NewServices(db, hasher, cfg, log),
	}, nil
}

func NewServices(db *gorm.DB, hasher password.Hasher, cfg *config.Config, log *logrus.Logger) service.Services {
	employeeRepo := repository.NewGormEmployeeRepository(db, log)
	workDayRepo := repository.NewGormWorkDayRepository(db, log)
	entryRepo := repository.NewGormTimeEntryRepository(db, log)
	absenceRepo := repository.NewGormAbsenceRepository(db, log)
	accountRepo := repository.NewGormUserAccountRepository(db, log)
	roleRepo := repository.NewGormRoleRepository(db, log)
	reportRepo := repository.NewGormReportRepository(db, log)

	return service.Services{
		Auth: service.NewAuthService(accountRepo, roleRepo, hasher, log),
		Tracking: service.NewTimeTrackingService(workDayRepo, entryRepo, employeeRepo, service.TimeTrackingOptions{
			Location:    cfg.Location,
			DeriveHours: cfg.DeriveHours,
		}, log),
		Reports:   service.NewReportService(reportRepo, employeeRepo, log),
		Employees: service.NewEmployeeService(employeeRepo, log),
		Accounts:  service.NewAccountService(accountRepo, roleRepo, employeeRepo, hasher, log),
		Absences:  service.NewAbsenceService(absenceRepo, employeeRepo, log),
	}
}

// Seed добавляет тестовые данные
func (a *App) Seed() error {
	return database.Seed(a.DB, a.Hasher, a.Logger)
}

func (a *App) Close() {
	if err := database.Close(a.DB); err != nil {
		a.Logger.WithError(err).Warn("Error closing database")
	}
}
