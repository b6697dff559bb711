package models

type AbsenceType struct {
	ID          uint    `gorm:"column:absence_type_id;primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"column:name;not null" json:"name"`
	IsPaid      *bool   `gorm:"column:is_paid" json:"is_paid"`
	Description *string `gorm:"column:description" json:"description"`

	Absences []Absence `gorm:"foreignKey:AbsenceTypeID" json:"-"`
}

func (AbsenceType) TableName() string {
	return "AbsenceType"
}

type Absence struct {
	ID            uint    `gorm:"column:absence_id;primaryKey;autoIncrement" json:"id"`
	EmployeeID    uint    `gorm:"column:employee_id;not null;index" json:"employee_id"`
	AbsenceTypeID uint    `gorm:"column:absence_type_id;not null" json:"absence_type_id"`
	DateFrom      Date    `gorm:"column:date_from;not null" json:"date_from"`
	DateTo        Date    `gorm:"column:date_to;not null" json:"date_to"`
	Status        *string `gorm:"column:status" json:"status"` // произвольная строка, например Requested/Approved
}

func (Absence) TableName() string {
	return "Absences"
}

// AbsenceWithType отсутствие вместе с названием типа
type AbsenceWithType struct {
	Absence
	TypeName string `gorm:"column:type_name" json:"type_name"`
}

// IsValid проверяет, что период не перевернут
func (a *Absence) IsValid() bool {
	if a.EmployeeID == 0 || a.AbsenceTypeID == 0 {
		return false
	}
	if a.DateFrom.IsZero() || a.DateTo.IsZero() {
		return false
	}
	return !a.DateFrom.After(a.DateTo)
}
