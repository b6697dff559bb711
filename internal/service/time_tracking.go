package service

import (
	"fmt"
	"time"

	"worktime/internal/apperror"
	"worktime/internal/models"
	"worktime/internal/repository"

	"github.com/sirupsen/logrus"
)

type TimeTrackingOptions struct {
	Location    *time.Location
	DeriveHours bool // пересчитывать total_hours по парам IN/OUT при уходе
	Now         func() time.Time
}

type TimeTrackingService struct {
	workDays  repository.WorkDayRepository
	entries   repository.TimeEntryRepository
	employees repository.EmployeeRepository
	opts      TimeTrackingOptions
	logger    *logrus.Logger
}

func NewTimeTrackingService(
	workDays repository.WorkDayRepository,
	entries repository.TimeEntryRepository,
	employees repository.EmployeeRepository,
	opts TimeTrackingOptions,
	logger *logrus.Logger,
) *TimeTrackingService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &TimeTrackingService{
		workDays:  workDays,
		entries:   entries,
		employees: employees,
		opts:      opts,
		logger:    logger,
	}
}

func (s *TimeTrackingService) now() time.Time {
	return s.opts.Now().In(s.opts.Location).Truncate(time.Second)
}

// Today текущая дата в часовом поясе системы
func (s *TimeTrackingService) Today() models.Date {
	return models.DateOf(s.now())
}

// MarkTimeEntry отмечает приход или уход сотрудника.
// Рабочий день на сегодня создается при первой отметке; чередование IN/OUT не проверяется.
func (s *TimeTrackingService) MarkTimeEntry(employeeID uint, kind models.EventKind, source string) (*models.TimeEntry, error) {
	if _, err := models.ParseEventKind(string(kind)); err != nil {
		return nil, apperror.InvalidInput("%s", err.Error())
	}

	employee, err := s.employees.GetByID(employeeID)
	if err != nil {
		return nil, fmt.Errorf("mark time entry: %w", err)
	}
	if employee == nil {
		return nil, apperror.NotFound("Сотрудник с ID=%d не найден", employeeID)
	}

	now := s.now()
	entry := &models.TimeEntry{
		EventTime: now,
		EventType: kind,
		Source:    models.OptionalString(source),
	}

	workDay, err := s.workDays.RecordEvent(employeeID, models.DateOf(now), entry)
	if err != nil {
		return nil, fmt.Errorf("mark time entry: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"workday_id":  workDay.ID,
		"event_type":  kind,
		"source":      source,
	}).Info("Time entry marked")

	if s.opts.DeriveHours && kind == models.EventOut {
		if _, err := s.RecalculateHours(workDay.ID); err != nil {
			return entry, err
		}
	}

	return entry, nil
}

// RecalculateHours записывает в рабочий день часы, посчитанные по отметкам
func (s *TimeTrackingService) RecalculateHours(workDayID uint) (float64, error) {
	entries, err := s.entries.GetForWorkDay(workDayID)
	if err != nil {
		return 0, fmt.Errorf("recalculate hours: %w", err)
	}

	hours := models.DerivedHours(entries)
	if err := s.workDays.UpdateTotalHours(workDayID, &hours); err != nil {
		return 0, fmt.Errorf("recalculate hours: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"workday_id": workDayID,
		"hours":      hours,
	}).Info("Work day hours recalculated")

	return hours, nil
}

// GetWorkDayWithEntries рабочий день и его отметки по времени
func (s *TimeTrackingService) GetWorkDayWithEntries(workDayID uint) (*models.WorkDay, []models.TimeEntry, error) {
	workDay, err := s.workDays.GetByID(workDayID)
	if err != nil {
		return nil, nil, err
	}
	if workDay == nil {
		return nil, nil, apperror.NotFound("Рабочий день не найден")
	}

	entries, err := s.entries.GetForWorkDay(workDayID)
	if err != nil {
		return nil, nil, err
	}

	return workDay, entries, nil
}

// GetEmployeeWithWorkDays сотрудник и его рабочие дни по дате
func (s *TimeTrackingService) GetEmployeeWithWorkDays(employeeID uint) (*models.Employee, []*models.WorkDay, error) {
	employee, err := s.employees.GetByID(employeeID)
	if err != nil {
		return nil, nil, err
	}
	if employee == nil {
		return nil, nil, apperror.NotFound("Сотрудник не найден")
	}

	workDays, err := s.workDays.GetForEmployee(employeeID)
	if err != nil {
		return nil, nil, err
	}

	return employee, workDays, nil
}
