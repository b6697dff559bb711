package service

import (
	"fmt"
	"strings"

	"worktime/internal/apperror"
	"worktime/internal/models"
	"worktime/internal/repository"

	"github.com/sirupsen/logrus"
)

type EmployeeService struct {
	employees repository.EmployeeRepository
	logger    *logrus.Logger
}

func NewEmployeeService(employees repository.EmployeeRepository, logger *logrus.Logger) *EmployeeService {
	return &EmployeeService{employees: employees, logger: logger}
}

// CreateEmployee создает сотрудника и возвращает его ID. Фамилия и имя обязательны.
func (s *EmployeeService) CreateEmployee(lastName, firstName, middleName, position, department string) (uint, error) {
	lastName = strings.TrimSpace(lastName)
	firstName = strings.TrimSpace(firstName)
	if lastName == "" || firstName == "" {
		return 0, apperror.InvalidInput("Фамилия и имя обязательны.")
	}

	employee := &models.Employee{
		LastName:   lastName,
		FirstName:  firstName,
		MiddleName: models.OptionalString(middleName),
		Position:   models.OptionalString(position),
		Department: models.OptionalString(department),
	}

	if err := s.employees.Create(employee); err != nil {
		return 0, fmt.Errorf("create employee: %w", err)
	}

	return employee.ID, nil
}

// UpdateEmployeeData меняет должность и отдел; пустое значение оставляет поле без изменений
func (s *EmployeeService) UpdateEmployeeData(employeeID uint, position, department string) error {
	if employeeID == 0 {
		return apperror.InvalidInput("employee_id is required for update")
	}

	employee, err := s.employees.GetByID(employeeID)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if employee == nil {
		return apperror.NotFound("Сотрудник не найден")
	}

	if p := models.OptionalString(position); p != nil {
		employee.Position = p
	}
	if d := models.OptionalString(department); d != nil {
		employee.Department = d
	}

	if err := s.employees.Update(employee); err != nil {
		return fmt.Errorf("update employee: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"position":    employee.PositionName(),
		"department":  employee.DepartmentName(),
	}).Info("Employee data updated")

	return nil
}

func (s *EmployeeService) GetEmployee(employeeID uint) (*models.Employee, error) {
	employee, err := s.employees.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NotFound("Сотрудник не найден")
	}
	return employee, nil
}

func (s *EmployeeService) ListEmployees() ([]*models.Employee, error) {
	return s.employees.GetAll()
}
