package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"worktime/internal/models"
	"worktime/internal/password"
)

var roleDescriptions = map[models.RoleName]string{
	models.RoleEmployee: "Обычный сотрудник",
	models.RoleHR:       "Сотрудник отдела кадров",
	models.RoleManager:  "Руководитель подразделения",
	models.RoleAdmin:    "Администратор системы",
}

// EnsureRoles создает недостающие роли из фиксированного набора
func EnsureRoles(db *gorm.DB) error {
	for _, name := range models.AllRoles {
		role := models.Role{Name: name, Description: models.OptionalString(roleDescriptions[name])}
		if err := db.Where(models.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("ensure role %s: %w", name, err)
		}
	}
	return nil
}

type seedAccount struct {
	employee models.Employee
	login    string
	password string
	role     models.RoleName
}

// Seed заполняет пустую БД тестовыми данными
func Seed(db *gorm.DB, hasher password.Hasher, logger *logrus.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := EnsureRoles(tx); err != nil {
			return err
		}

		accounts := []seedAccount{
			{employee("Иванов", "Иван", "Иванович", "Разработчик", "ИТ-отдел"), "ivanov", "emp11", models.RoleEmployee},
			{employee("Сидорова", "Анна", "Сергеевна", "HR-менеджер", "Отдел кадров"), "sidorova", "hr33", models.RoleHR},
			{employee("Петров", "Пётр", "Петрович", "Руководитель отдела", "Отдел продаж"), "petrov", "man22", models.RoleManager},
			{employee("Смирнов", "Алексей", "Олегович", "Системный администратор", "ИТ-отдел"), "smirnov", "adm44", models.RoleAdmin},
		}

		employeeIDs := make([]uint, 0, len(accounts))
		for i := range accounts {
			a := &accounts[i]
			if err := tx.Create(&a.employee).Error; err != nil {
				return fmt.Errorf("seed employee: %w", err)
			}
			employeeIDs = append(employeeIDs, a.employee.ID)

			hash, err := hasher.Hash(a.password)
			if err != nil {
				return err
			}
			active := true
			account := models.UserAccount{EmployeeID: a.employee.ID, Login: a.login, PasswordHash: hash, IsActive: &active}
			if err := tx.Omit(clause.Associations).Create(&account).Error; err != nil {
				return fmt.Errorf("seed account %s: %w", a.login, err)
			}

			var role models.Role
			if err := tx.Where("name = ?", a.role).First(&role).Error; err != nil {
				return fmt.Errorf("seed role %s: %w", a.role, err)
			}
			if err := tx.Omit(clause.Associations).Create(&models.UserRole{UserID: account.ID, RoleID: role.ID}).Error; err != nil {
				return fmt.Errorf("seed user role: %w", err)
			}
		}

		types := []models.AbsenceType{
			absenceType("Отпуск", true, "Ежегодный оплачиваемый отпуск"),
			absenceType("Больничный", true, "Лист нетрудоспособности"),
			absenceType("Командировка", true, "Командировка по работе"),
			absenceType("Отгул", false, "Неоплачиваемый день"),
		}
		if err := tx.Create(&types).Error; err != nil {
			return fmt.Errorf("seed absence types: %w", err)
		}

		days := []models.WorkDay{
			workDay(employeeIDs[0], models.NewDate(2025, time.December, 1), "09:00", 8.0),
			workDay(employeeIDs[0], models.NewDate(2025, time.December, 2), "09:00", 7.5),
			workDay(employeeIDs[1], models.NewDate(2025, time.December, 1), "09:00", 8.0),
			workDay(employeeIDs[2], models.NewDate(2025, time.December, 1), "10:00", 7.0),
		}
		if err := tx.Omit(clause.Associations).Create(&days).Error; err != nil {
			return fmt.Errorf("seed workdays: %w", err)
		}

		entries := []models.TimeEntry{
			timeEntry(days[0].ID, time.Date(2025, time.December, 1, 9, 1, 0, 0, time.Local), models.EventIn, "терминал"),
			timeEntry(days[0].ID, time.Date(2025, time.December, 1, 17, 5, 0, 0, time.Local), models.EventOut, "терминал"),
			timeEntry(days[1].ID, time.Date(2025, time.December, 2, 9, 3, 0, 0, time.Local), models.EventIn, "web"),
		}
		if err := tx.Omit(clause.Associations).Create(&entries).Error; err != nil {
			return fmt.Errorf("seed time entries: %w", err)
		}

		logger.WithFields(logrus.Fields{
			"employees": len(accounts),
			"workdays":  len(days),
			"entries":   len(entries),
		}).Info("Test data inserted")

		return nil
	})
}

func employee(last, first, middle, position, department string) models.Employee {
	return models.Employee{
		LastName:   last,
		FirstName:  first,
		MiddleName: models.OptionalString(middle),
		Position:   models.OptionalString(position),
		Department: models.OptionalString(department),
	}
}

func absenceType(name string, paid bool, description string) models.AbsenceType {
	return models.AbsenceType{Name: name, IsPaid: &paid, Description: models.OptionalString(description)}
}

func workDay(employeeID uint, date models.Date, plannedStart string, hours float64) models.WorkDay {
	return models.WorkDay{
		EmployeeID:   employeeID,
		WorkDate:     date,
		PlannedStart: models.OptionalString(plannedStart),
		TotalHours:   &hours,
	}
}

func timeEntry(workDayID uint, at time.Time, kind models.EventKind, source string) models.TimeEntry {
	return models.TimeEntry{WorkDayID: workDayID, EventTime: at, EventType: kind, Source: models.OptionalString(source)}
}
