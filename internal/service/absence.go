package service

import (
	"fmt"

	"worktime/internal/apperror"
	"worktime/internal/models"
	"worktime/internal/repository"

	"github.com/sirupsen/logrus"
)

type AbsenceService struct {
	absences  repository.AbsenceRepository
	employees repository.EmployeeRepository
	logger    *logrus.Logger
}

func NewAbsenceService(
	absences repository.AbsenceRepository,
	employees repository.EmployeeRepository,
	logger *logrus.Logger,
) *AbsenceService {
	return &AbsenceService{
		absences:  absences,
		employees: employees,
		logger:    logger,
	}
}

func (s *AbsenceService) ListAbsenceTypes() ([]models.AbsenceType, error) {
	return s.absences.GetTypes()
}

// CreateAbsence регистрирует отсутствие; статус хранится как есть
func (s *AbsenceService) CreateAbsence(employeeID, typeID uint, from, to models.Date, status string) (uint, error) {
	if from.After(to) {
		return 0, apperror.InvalidInput("дата начала %s позже даты окончания %s", from, to)
	}

	employee, err := s.employees.GetByID(employeeID)
	if err != nil {
		return 0, fmt.Errorf("create absence: %w", err)
	}
	if employee == nil {
		return 0, apperror.NotFound("Сотрудник с ID=%d не найден", employeeID)
	}

	absenceType, err := s.absences.GetTypeByID(typeID)
	if err != nil {
		return 0, fmt.Errorf("create absence: %w", err)
	}
	if absenceType == nil {
		return 0, apperror.NotFound("Тип отсутствия с ID=%d не найден", typeID)
	}

	absence := &models.Absence{
		EmployeeID:    employeeID,
		AbsenceTypeID: typeID,
		DateFrom:      from,
		DateTo:        to,
		Status:        models.OptionalString(status),
	}
	if err := s.absences.Create(absence); err != nil {
		return 0, fmt.Errorf("create absence: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"absence_id":  absence.ID,
		"employee_id": employeeID,
		"type":        absenceType.Name,
	}).Info("Absence created")

	return absence.ID, nil
}

// GetAbsencesForEmployee отсутствия сотрудника с названием типа
func (s *AbsenceService) GetAbsencesForEmployee(employeeID uint) ([]models.AbsenceWithType, error) {
	return s.absences.GetForEmployee(employeeID)
}

// UpdateStatus например Requested -> Approved
func (s *AbsenceService) UpdateStatus(absenceID uint, status string) error {
	return s.absences.UpdateStatus(absenceID, models.OptionalString(status))
}

func (s *AbsenceService) DeleteAbsence(absenceID uint) error {
	return s.absences.Delete(absenceID)
}
