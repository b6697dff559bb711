package repository

import (
	"worktime/internal/apperror"
	"worktime/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AbsenceRepository interface {
	Create(absence *models.Absence) error
	GetByID(id uint) (*models.Absence, error)
	GetForEmployee(employeeID uint) ([]models.AbsenceWithType, error)
	UpdateStatus(id uint, status *string) error
	Delete(id uint) error
	GetTypes() ([]models.AbsenceType, error)
	GetTypeByID(id uint) (*models.AbsenceType, error)
}

type GormAbsenceRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormAbsenceRepository(db *gorm.DB, logger *logrus.Logger) *GormAbsenceRepository {
	return &GormAbsenceRepository{db: db, logger: logger}
}

func (r *GormAbsenceRepository) Create(absence *models.Absence) error {
	r.logger.WithFields(logrus.Fields{
		"employee_id": absence.EmployeeID,
		"type_id":     absence.AbsenceTypeID,
		"from":        absence.DateFrom.String(),
		"to":          absence.DateTo.String(),
	}).Info("Creating absence")

	if !absence.IsValid() {
		r.logger.Warn("Invalid absence data")
		return apperror.InvalidInput("некорректный период отсутствия")
	}

	err := r.db.Omit(clause.Associations).Create(absence).Error
	if isForeignKeyViolation(err) {
		return apperror.NotFound("сотрудник или тип отсутствия не найден")
	}
	if err != nil {
		r.logger.WithError(err).Error("Failed to create absence")
		return err
	}

	return nil
}

func (r *GormAbsenceRepository) GetByID(id uint) (*models.Absence, error) {
	var absence models.Absence
	err := r.db.First(&absence, id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &absence, nil
}

// GetForEmployee все отсутствия сотрудника с названием типа, по дате начала
func (r *GormAbsenceRepository) GetForEmployee(employeeID uint) ([]models.AbsenceWithType, error) {
	var absences []models.AbsenceWithType
	err := r.db.Table("Absences AS a").
		Select("a.*, t.name AS type_name").
		Joins("JOIN AbsenceType t ON a.absence_type_id = t.absence_type_id").
		Where("a.employee_id = ?", employeeID).
		Order("a.date_from").
		Scan(&absences).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to get absences for employee")
		return nil, err
	}
	return absences, nil
}

func (r *GormAbsenceRepository) UpdateStatus(id uint, status *string) error {
	result := r.db.Model(&models.Absence{}).Where("absence_id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("Отсутствие не найдено")
	}
	return nil
}

func (r *GormAbsenceRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Absence{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("Отсутствие не найдено")
	}
	return nil
}

func (r *GormAbsenceRepository) GetTypes() ([]models.AbsenceType, error) {
	var types []models.AbsenceType
	err := r.db.Order("absence_type_id").Find(&types).Error
	return types, err
}

func (r *GormAbsenceRepository) GetTypeByID(id uint) (*models.AbsenceType, error) {
	var absenceType models.AbsenceType
	err := r.db.First(&absenceType, id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &absenceType, nil
}
