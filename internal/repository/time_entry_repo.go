package repository

import (
	"worktime/internal/apperror"
	"worktime/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TimeEntryRepository interface {
	Create(entry *models.TimeEntry) error
	GetForWorkDay(workDayID uint) ([]models.TimeEntry, error)
}

type GormTimeEntryRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormTimeEntryRepository(db *gorm.DB, logger *logrus.Logger) *GormTimeEntryRepository {
	return &GormTimeEntryRepository{db: db, logger: logger}
}

func (r *GormTimeEntryRepository) Create(entry *models.TimeEntry) error {
	err := r.db.Omit(clause.Associations).Create(entry).Error
	if isForeignKeyViolation(err) {
		return apperror.NotFound("Рабочий день не найден")
	}
	if err != nil {
		r.logger.WithError(err).Error("Failed to create time entry")
		return err
	}
	return nil
}

// GetForWorkDay отметки дня по возрастанию времени
func (r *GormTimeEntryRepository) GetForWorkDay(workDayID uint) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	result := r.db.Where("workday_id = ?", workDayID).Order("event_time, time_entry_id").Find(&entries)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get time entries")
		return nil, result.Error
	}

	return entries, nil
}
