package repository

import (
	"worktime/internal/apperror"
	"worktime/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkDayRepository interface {
	Create(workDay *models.WorkDay) error
	GetByID(id uint) (*models.WorkDay, error)
	GetByEmployeeAndDate(employeeID uint, date models.Date) (*models.WorkDay, error)
	GetForEmployee(employeeID uint) ([]*models.WorkDay, error)
	UpdateTotalHours(id uint, hours *float64) error
	RecordEvent(employeeID uint, date models.Date, entry *models.TimeEntry) (*models.WorkDay, error)
}

type GormWorkDayRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormWorkDayRepository(db *gorm.DB, logger *logrus.Logger) *GormWorkDayRepository {
	return &GormWorkDayRepository{db: db, logger: logger}
}

func (r *GormWorkDayRepository) Create(workDay *models.WorkDay) error {
	r.logger.WithFields(logrus.Fields{
		"employee_id": workDay.EmployeeID,
		"date":        workDay.WorkDate.String(),
	}).Info("Creating work day")

	err := r.db.Omit(clause.Associations).Create(workDay).Error
	if isDuplicate(err) {
		r.logger.WithFields(logrus.Fields{
			"employee_id": workDay.EmployeeID,
			"date":        workDay.WorkDate.String(),
		}).Warn("Work day already exists for this date")
		return apperror.Duplicate("рабочий день на эту дату уже существует")
	}
	if isForeignKeyViolation(err) {
		return apperror.NotFound("Сотрудник не найден")
	}
	if err != nil {
		r.logger.WithError(err).Error("Failed to create work day")
		return err
	}

	return nil
}

func (r *GormWorkDayRepository) GetByID(id uint) (*models.WorkDay, error) {
	var workDay models.WorkDay
	result := r.db.First(&workDay, id)

	if isNotFound(result.Error) {
		r.logger.WithField("id", id).Debug("Work day not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get work day by ID")
		return nil, result.Error
	}

	return &workDay, nil
}

func (r *GormWorkDayRepository) GetByEmployeeAndDate(employeeID uint, date models.Date) (*models.WorkDay, error) {
	return findWorkDay(r.db, employeeID, date)
}

func findWorkDay(db *gorm.DB, employeeID uint, date models.Date) (*models.WorkDay, error) {
	var workDay models.WorkDay
	result := db.Where("employee_id = ? AND work_date = ?", employeeID, date).Limit(1).Find(&workDay)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &workDay, nil
}

func (r *GormWorkDayRepository) GetForEmployee(employeeID uint) ([]*models.WorkDay, error) {
	var workDays []*models.WorkDay
	result := r.db.Where("employee_id = ?", employeeID).Order("work_date").Find(&workDays)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get work days by employee ID")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"count":       len(workDays),
	}).Debug("Retrieved work days by employee ID")

	return workDays, nil
}

func (r *GormWorkDayRepository) UpdateTotalHours(id uint, hours *float64) error {
	result := r.db.Model(&models.WorkDay{}).Where("workday_id = ?", id).Update("total_hours", hours)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update total hours")
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperror.NotFound("Рабочий день не найден")
	}

	return nil
}

// RecordEvent в одной транзакции находит или создает рабочий день и добавляет к нему отметку.
// Уникальный индекс (employee_id, work_date) гарантирует не больше одного дня на дату.
func (r *GormWorkDayRepository) RecordEvent(employeeID uint, date models.Date, entry *models.TimeEntry) (*models.WorkDay, error) {
	var workDay *models.WorkDay
	created := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		existing, err := findWorkDay(tx, employeeID, date)
		if err != nil {
			return err
		}

		if existing == nil {
			existing = &models.WorkDay{EmployeeID: employeeID, WorkDate: date}
			if err := tx.Omit(clause.Associations).Create(existing).Error; err != nil {
				return err
			}
			created = true
		}
		workDay = existing

		entry.WorkDayID = workDay.ID
		return tx.Omit(clause.Associations).Create(entry).Error
	})
	if isForeignKeyViolation(err) {
		return nil, apperror.NotFound("Сотрудник не найден")
	}
	if err != nil {
		r.logger.WithError(err).Error("Failed to record time entry")
		return nil, err
	}

	r.logger.WithFields(logrus.Fields{
		"employee_id":     employeeID,
		"workday_id":      workDay.ID,
		"workday_created": created,
		"event_type":      entry.EventType,
	}).Info("Time entry recorded")

	return workDay, nil
}
