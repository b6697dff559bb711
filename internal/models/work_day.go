package models

import "math"

type WorkDay struct {
	ID           uint     `gorm:"column:workday_id;primaryKey;autoIncrement" json:"id"`
	EmployeeID   uint     `gorm:"column:employee_id;not null;uniqueIndex:idx_workdays_employee_date" json:"employee_id"`
	WorkDate     Date     `gorm:"column:work_date;not null;uniqueIndex:idx_workdays_employee_date" json:"date"`
	PlannedStart *string  `gorm:"column:planned_start" json:"planned_start"` // HH:MM
	TotalHours   *float64 `gorm:"column:total_hours" json:"total_hours"`

	Entries []TimeEntry `gorm:"foreignKey:WorkDayID" json:"-"`
}

func (WorkDay) TableName() string {
	return "WorkDays"
}

// Hours возвращает отработанные часы, 0 если значение ещё не заполнено
func (wd *WorkDay) Hours() float64 {
	if wd.TotalHours == nil {
		return 0
	}
	return *wd.TotalHours
}

// DerivedHours считает часы по парам IN -> OUT.
// Записи должны быть упорядочены по времени; непарные отметки игнорируются.
func DerivedHours(entries []TimeEntry) float64 {
	var total float64
	var openIn *TimeEntry

	for i := range entries {
		e := &entries[i]
		switch e.EventType {
		case EventIn:
			if openIn == nil {
				openIn = e
			}
		case EventOut:
			if openIn != nil && e.EventTime.After(openIn.EventTime) {
				total += e.EventTime.Sub(openIn.EventTime).Hours()
			}
			openIn = nil
		}
	}

	return math.Round(total*100) / 100
}
