package models

import "strings"

type Employee struct {
	ID         uint    `gorm:"column:employee_id;primaryKey;autoIncrement" json:"employee_id"`
	LastName   string  `gorm:"column:last_name;not null" json:"last_name"`
	FirstName  string  `gorm:"column:first_name;not null" json:"first_name"`
	MiddleName *string `gorm:"column:middle_name" json:"middle_name"`
	Position   *string `gorm:"column:position" json:"position"`
	Department *string `gorm:"column:department" json:"department"`

	// связи объявлены со стороны родителя, внешние ключи создаются в дочерних таблицах
	WorkDays []WorkDay     `gorm:"foreignKey:EmployeeID" json:"-"`
	Accounts []UserAccount `gorm:"foreignKey:EmployeeID" json:"-"`
	Absences []Absence     `gorm:"foreignKey:EmployeeID" json:"-"`
}

// TableName задает имя таблицы в БД
func (Employee) TableName() string {
	return "Employee"
}

// FullName фамилия, имя и отчество через один пробел
func (e *Employee) FullName() string {
	return JoinName(e.LastName, e.FirstName, StringValue(e.MiddleName))
}

func (e *Employee) DepartmentName() string {
	return StringValue(e.Department)
}

func (e *Employee) PositionName() string {
	return StringValue(e.Position)
}

// IsValid проверяет обязательные поля
func (e *Employee) IsValid() bool {
	return strings.TrimSpace(e.LastName) != "" && strings.TrimSpace(e.FirstName) != ""
}

func JoinName(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// OptionalString превращает пустую строку в NULL
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
