package repository

import (
	"worktime/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReportRepository interface {
	PersonalReport(employeeID uint) ([]models.PersonalReportRow, error)
	Timesheet(from, to models.Date, department *string) ([]models.TimesheetRow, error)
	EmployeeWorkDays() ([]models.EmployeeWorkDayRow, error)
}

type GormReportRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormReportRepository(db *gorm.DB, logger *logrus.Logger) *GormReportRepository {
	return &GormReportRepository{db: db, logger: logger}
}

// PersonalReport по строке на каждый рабочий день сотрудника, дни без отметок тоже попадают в отчет
func (r *GormReportRepository) PersonalReport(employeeID uint) ([]models.PersonalReportRow, error) {
	var rows []models.PersonalReportRow

	result := r.db.Table("WorkDays AS w").
		Select("w.work_date AS work_date, IFNULL(w.total_hours, 0.0) AS total_hours, COUNT(t.time_entry_id) AS events_count").
		Joins("LEFT JOIN TimeEntries t ON t.workday_id = w.workday_id").
		Where("w.employee_id = ?", employeeID).
		Group("w.workday_id, w.work_date, w.total_hours").
		Order("w.work_date").
		Scan(&rows)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to build personal report")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"rows":        len(rows),
	}).Debug("Personal report built")

	return rows, nil
}

// Timesheet табель за период [from, to]; department == nil означает всю организацию
func (r *GormReportRepository) Timesheet(from, to models.Date, department *string) ([]models.TimesheetRow, error) {
	var rows []models.TimesheetRow

	query := r.db.Table("WorkDays AS w").
		Select(`IFNULL(e.department, '') AS department,
			TRIM(e.last_name || ' ' || e.first_name || ' ' || IFNULL(e.middle_name, '')) AS full_name,
			w.work_date AS work_date, IFNULL(w.total_hours, 0.0) AS hours`).
		Joins("JOIN Employee e ON e.employee_id = w.employee_id").
		Where("w.work_date BETWEEN ? AND ?", from, to)

	if department != nil {
		query = query.Where("e.department = ?", *department)
	}

	result := query.Order("department, full_name, w.work_date").Scan(&rows)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to generate timesheet")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"from":       from.String(),
		"to":         to.String(),
		"department": models.StringValue(department),
		"rows":       len(rows),
	}).Debug("Timesheet generated")

	return rows, nil
}

// EmployeeWorkDays плоские строки сотрудник + рабочий день для выгрузок
func (r *GormReportRepository) EmployeeWorkDays() ([]models.EmployeeWorkDayRow, error) {
	var rows []models.EmployeeWorkDayRow

	err := r.db.Table("Employee AS e").
		Select(`e.employee_id AS employee_id, e.last_name AS last_name, e.first_name AS first_name,
			e.middle_name AS middle_name, e.position AS position, e.department AS department,
			w.workday_id AS workday_id, w.work_date AS workday_date,
			w.planned_start AS workday_planned_start, w.total_hours AS workday_total_hours`).
		Joins("LEFT JOIN WorkDays w ON w.employee_id = e.employee_id").
		Order("e.employee_id, w.work_date").
		Scan(&rows).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to load employee work days")
		return nil, err
	}

	return rows, nil
}
