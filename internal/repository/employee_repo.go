package repository

import (
	"worktime/internal/apperror"
	"worktime/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	GetByID(id uint) (*models.Employee, error)
	GetAll() ([]*models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id uint) error
}

type GormEmployeeRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormEmployeeRepository(db *gorm.DB, logger *logrus.Logger) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db, logger: logger}
}

func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	r.logger.WithFields(logrus.Fields{
		"last_name":  employee.LastName,
		"first_name": employee.FirstName,
	}).Info("Creating employee")

	if !employee.IsValid() {
		r.logger.Warn("Invalid employee data")
		return apperror.InvalidInput("фамилия и имя обязательны")
	}

	if err := r.db.Create(employee).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create employee")
		return err
	}

	r.logger.WithField("id", employee.ID).Info("Employee created successfully")
	return nil
}

func (r *GormEmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.First(&employee, id)

	if isNotFound(result.Error) {
		r.logger.WithField("id", id).Debug("Employee not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get employee by ID")
		return nil, result.Error
	}

	return &employee, nil
}

func (r *GormEmployeeRepository) GetAll() ([]*models.Employee, error) {
	var employees []*models.Employee
	result := r.db.Order("employee_id").Find(&employees)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get employees")
		return nil, result.Error
	}

	r.logger.WithField("count", len(employees)).Debug("Retrieved employees")
	return employees, nil
}

func (r *GormEmployeeRepository) Update(employee *models.Employee) error {
	if employee.ID == 0 {
		return apperror.InvalidInput("employee_id is required for update")
	}

	r.logger.WithField("id", employee.ID).Info("Updating employee")

	result := r.db.Model(&models.Employee{}).
		Where("employee_id = ?", employee.ID).
		Select("last_name", "first_name", "middle_name", "position", "department").
		Updates(employee)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update employee")
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.WithField("id", employee.ID).Warn("Employee not found for update")
		return apperror.NotFound("Сотрудник не найден")
	}

	return nil
}

func (r *GormEmployeeRepository) Delete(id uint) error {
	r.logger.WithField("id", id).Info("Deleting employee")

	result := r.db.Delete(&models.Employee{}, id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return apperror.InvalidReference("у сотрудника есть связанные записи")
		}
		r.logger.WithError(result.Error).Error("Failed to delete employee")
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperror.NotFound("Сотрудник не найден")
	}

	return nil
}
