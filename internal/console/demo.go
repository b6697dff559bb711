package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"worktime/internal/apperror"
	"worktime/internal/models"
	"worktime/internal/service"
)

const (
	demoEmployeeID uint = 1
	demoWorkDayID  uint = 1
	demoUserID     uint = 3
)

// Demo печатает содержимое базы по разделам: сотрудники, дни, события, отсутствия, учетки, роли
func Demo(w io.Writer, svc service.Services) error {
	steps := []func(io.Writer, service.Services) error{
		demoEmployees,
		demoEmployeeWorkDays,
		demoWorkDayEntries,
		demoAbsences,
		demoAccounts,
		demoRoles,
	}
	for _, step := range steps {
		if err := step(w, svc); err != nil {
			return err
		}
	}
	return nil
}

func section(w io.Writer, title string) {
	line := strings.Repeat("=", len([]rune(title))+4)
	fmt.Fprintf(w, "\n%s\n= %s =\n%s\n", line, title, line)
}

func uintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func demoEmployees(w io.Writer, svc service.Services) error {
	section(w, "Все сотрудники")

	employees, err := svc.Employees.ListEmployees()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{uintString(e.ID), e.FullName(), e.PositionName(), e.DepartmentName()})
	}
	PrintTable(w, []string{"ID", "ФИО", "Должность", "Отдел"}, rows)
	return nil
}

func demoEmployeeWorkDays(w io.Writer, svc service.Services) error {
	section(w, fmt.Sprintf("Сотрудник %d + его рабочие дни", demoEmployeeID))

	employee, days, err := svc.Tracking.GetEmployeeWithWorkDays(demoEmployeeID)
	if errors.Is(err, apperror.ErrNotFound) {
		fmt.Fprintln(w, "Сотрудник не найден.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Сотрудник: %s (ID=%d)\n", employee.FullName(), employee.ID)
	if len(days) == 0 {
		fmt.Fprintln(w, "Рабочих дней нет.")
		return nil
	}

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		hours := ""
		if d.TotalHours != nil {
			hours = models.FormatHours(*d.TotalHours)
		}
		rows = append(rows, []string{uintString(d.ID), d.WorkDate.String(), models.StringValue(d.PlannedStart), hours})
	}
	PrintTable(w, []string{"ID дня", "Дата", "План. начало", "Часы"}, rows)
	return nil
}

func demoWorkDayEntries(w io.Writer, svc service.Services) error {
	section(w, fmt.Sprintf("WorkDay %d + события", demoWorkDayID))

	day, entries, err := svc.Tracking.GetWorkDayWithEntries(demoWorkDayID)
	if errors.Is(err, apperror.ErrNotFound) {
		fmt.Fprintln(w, "Рабочий день не найден.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Рабочий день ID=%d, дата %s\n", day.ID, day.WorkDate)
	if len(entries) == 0 {
		fmt.Fprintln(w, "Событий нет.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		rows = append(rows, []string{uintString(e.ID), e.FormatTime(), e.EventType.String(), e.SourceName()})
	}
	PrintTable(w, []string{"ID события", "Время", "Тип", "Источник"}, rows)
	return nil
}

func demoAbsences(w io.Writer, svc service.Services) error {
	section(w, fmt.Sprintf("Отсутствия сотрудника %d", demoEmployeeID))

	absences, err := svc.Absences.GetAbsencesForEmployee(demoEmployeeID)
	if err != nil {
		return err
	}
	if len(absences) == 0 {
		fmt.Fprintln(w, "Отсутствий нет.")
		return nil
	}

	rows := make([][]string, 0, len(absences))
	for _, a := range absences {
		rows = append(rows, []string{uintString(a.ID), a.TypeName, a.DateFrom.String(), a.DateTo.String(), models.StringValue(a.Status)})
	}
	PrintTable(w, []string{"ID", "Тип", "С даты", "По дату", "Статус"}, rows)
	return nil
}

func demoAccounts(w io.Writer, svc service.Services) error {
	section(w, "Учётные записи пользователей")

	accounts, err := svc.Accounts.ListUsers()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		status := "активен"
		if !a.Active() {
			status = "заблокирован"
		}
		rows = append(rows, []string{uintString(a.ID), a.Login, uintString(a.EmployeeID), status})
	}
	PrintTable(w, []string{"ID", "Логин", "ID сотрудника", "Статус"}, rows)
	return nil
}

func demoRoles(w io.Writer, svc service.Services) error {
	section(w, fmt.Sprintf("Роли пользователя %d", demoUserID))

	roles, err := svc.Accounts.GetRolesForUser(demoUserID)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		fmt.Fprintln(w, "У пользователя нет ролей.")
		return nil
	}

	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, []string{uintString(r.ID), string(r.Name), models.StringValue(r.Description)})
	}
	PrintTable(w, []string{"ID роли", "Название", "Описание"}, rows)
	return nil
}
