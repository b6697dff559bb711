package service

import (
	"fmt"

	"worktime/internal/apperror"
	"worktime/internal/models"
	"worktime/internal/repository"

	"github.com/sirupsen/logrus"
)

type ReportService struct {
	reports   repository.ReportRepository
	employees repository.EmployeeRepository
	logger    *logrus.Logger
}

func NewReportService(
	reports repository.ReportRepository,
	employees repository.EmployeeRepository,
	logger *logrus.Logger,
) *ReportService {
	return &ReportService{
		reports:   reports,
		employees: employees,
		logger:    logger,
	}
}

// GetPersonalReport личный отчет: дата, часы, количество отметок
func (s *ReportService) GetPersonalReport(employeeID uint) ([]models.PersonalReportRow, error) {
	rows, err := s.reports.PersonalReport(employeeID)
	if err != nil {
		return nil, fmt.Errorf("personal report: %w", err)
	}
	return rows, nil
}

// GenerateTimesheet табель за период включительно; department == nil означает всю организацию
func (s *ReportService) GenerateTimesheet(from, to models.Date, department *string) ([]models.TimesheetRow, error) {
	if from.After(to) {
		return nil, apperror.InvalidInput("дата начала %s позже даты окончания %s", from, to)
	}

	s.logger.WithFields(logrus.Fields{
		"from":       from.String(),
		"to":         to.String(),
		"department": models.StringValue(department),
	}).Info("Generating timesheet")

	rows, err := s.reports.Timesheet(from, to, department)
	if err != nil {
		return nil, fmt.Errorf("generate timesheet: %w", err)
	}
	return rows, nil
}

// GetDepartmentOfEmployee отдел сотрудника; ok == false, если сотрудника нет или отдел не задан
func (s *ReportService) GetDepartmentOfEmployee(employeeID uint) (string, bool, error) {
	employee, err := s.employees.GetByID(employeeID)
	if err != nil {
		return "", false, err
	}
	if employee == nil || employee.Department == nil || *employee.Department == "" {
		return "", false, nil
	}
	return *employee.Department, true, nil
}

// GetDepartmentTimesheet табель подразделения, которым руководит сотрудник
func (s *ReportService) GetDepartmentTimesheet(managerEmployeeID uint, from, to models.Date) (string, []models.TimesheetRow, error) {
	department, ok, err := s.GetDepartmentOfEmployee(managerEmployeeID)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, apperror.NotFound("Не удалось определить ваш отдел.")
	}

	rows, err := s.GenerateTimesheet(from, to, &department)
	if err != nil {
		return "", nil, err
	}
	return department, rows, nil
}

// EmployeeWorkDays данные для выгрузок
func (s *ReportService) EmployeeWorkDays() ([]models.EmployeeWorkDayRow, error) {
	return s.reports.EmployeeWorkDays()
}
