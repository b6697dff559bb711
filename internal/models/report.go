package models

import (
	"strconv"
	"strings"
)

// PersonalReportRow строка личного отчета: дата, часы, количество отметок
type PersonalReportRow struct {
	WorkDate    Date    `gorm:"column:work_date" json:"date"`
	TotalHours  float64 `gorm:"column:total_hours" json:"total_hours"`
	EventsCount int64   `gorm:"column:events_count" json:"events_count"`
}

// TimesheetRow строка табеля: отдел, ФИО, дата, часы
type TimesheetRow struct {
	Department string  `gorm:"column:department" json:"department"`
	FullName   string  `gorm:"column:full_name" json:"full_name"`
	WorkDate   Date    `gorm:"column:work_date" json:"date"`
	Hours      float64 `gorm:"column:hours" json:"hours"`
}

// EmployeeWorkDayRow сотрудник с одним рабочим днем (или без него) для выгрузок
type EmployeeWorkDayRow struct {
	EmployeeID          uint     `gorm:"column:employee_id"`
	LastName            string   `gorm:"column:last_name"`
	FirstName           string   `gorm:"column:first_name"`
	MiddleName          *string  `gorm:"column:middle_name"`
	Position            *string  `gorm:"column:position"`
	Department          *string  `gorm:"column:department"`
	WorkDayID           *uint    `gorm:"column:workday_id"`
	WorkDayDate         Date     `gorm:"column:workday_date"`
	WorkDayPlannedStart *string  `gorm:"column:workday_planned_start"`
	WorkDayTotalHours   *float64 `gorm:"column:workday_total_hours"`
}

// FormatHours часы с минимум одним знаком после точки: 8 -> "8.0", 7.25 -> "7.25"
func FormatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
