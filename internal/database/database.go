package database

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"worktime/internal/models"
)

// Open открывает SQLite базу и включает внешние ключи
func Open(dsn string, logger *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(withForeignKeys(dsn)), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// SQLite пишет в один поток
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		logger.WithError(err).Warn("Failed to enable foreign keys")
	}

	logger.WithField("dsn", dsn).Debug("Database opened")
	return db, nil
}

// withForeignKeys добавляет в DSN параметр драйвера, чтобы PRAGMA применялась к каждому соединению
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	if !strings.HasPrefix(dsn, "file:") && sep == "?" {
		return "file:" + dsn + "?_foreign_keys=on"
	}
	return dsn + sep + "_foreign_keys=on"
}

// OpenInMemory открывает именованную БД в памяти и создает схему
func OpenInMemory(name string, logger *logrus.Logger) (*gorm.DB, error) {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	db, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), logger)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate создает все таблицы и индексы
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Employee{},
		&models.WorkDay{},
		&models.TimeEntry{},
		&models.AbsenceType{},
		&models.Absence{},
		&models.Role{},
		&models.UserAccount{},
		&models.UserRole{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Reset удаляет файл БД, чтобы идентификаторы начинались заново
func Reset(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
