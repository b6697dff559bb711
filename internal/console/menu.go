package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"worktime/internal/apperror"
	"worktime/internal/export"
	"worktime/internal/models"
	"worktime/internal/service"

	"github.com/sirupsen/logrus"
)

const maxLoginAttempts = 3

// Menu консольное меню, пункты которого видны только при нужной роли
type Menu struct {
	in     *bufio.Scanner
	out    io.Writer
	svc    service.Services
	source string
	logger *logrus.Logger
}

func NewMenu(in io.Reader, out io.Writer, svc service.Services, source string, logger *logrus.Logger) *Menu {
	if source == "" {
		source = "console"
	}
	return &Menu{
		in:     bufio.NewScanner(in),
		out:    out,
		svc:    svc,
		source: source,
		logger: logger,
	}
}

// Run вход в систему и главное меню; конец ввода завершает работу без ошибки
func (m *Menu) Run() error {
	m.println("=== Система учёта рабочего времени ===")

	principal, err := m.Login()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	if principal == nil {
		return nil
	}

	m.println("\nУспешный вход.")
	err = m.Loop(principal)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Login до трех попыток; nil без ошибки означает, что доступ не получен
func (m *Menu) Login() (*service.Principal, error) {
	for attempt := 0; attempt < maxLoginAttempts; attempt++ {
		login, err := m.ask("Логин: ")
		if err != nil {
			return nil, err
		}
		password, err := m.ask("Пароль: ")
		if err != nil {
			return nil, err
		}

		principal, err := m.svc.Auth.Authenticate(login, password)
		if errors.Is(err, service.ErrNoMatch) {
			m.println("Неверный логин или пароль, попробуйте ещё раз.")
			continue
		}
		if err != nil {
			return nil, err
		}

		if !principal.CanLogin() {
			m.println("У пользователя нет ролей. Доступ запрещён.")
			return nil, nil
		}
		return principal, nil
	}

	m.println("Превышено количество попыток входа.")
	return nil, nil
}

// Loop главное меню до выбора пункта 0
func (m *Menu) Loop(p *service.Principal) error {
	for {
		m.printMenu(p)

		choice, err := m.ask("Выберите пункт: ")
		if err != nil {
			return err
		}

		if choice == "0" {
			m.println("Выход из программы.")
			return nil
		}

		action, ok := parseAction(choice)
		if !ok || !service.Allowed(p.Roles, action) {
			m.println("Неверный пункт или у вашей роли нет доступа.")
			continue
		}

		if err := m.dispatch(p, action); err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			m.report(err)
		}
	}
}

func parseAction(choice string) (service.Action, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil || n < int(service.ActionClockIn) || n > int(service.ActionCreateEmployeeWithUser) {
		return 0, false
	}
	return service.Action(n), true
}

func (m *Menu) printMenu(p *service.Principal) {
	m.println("\n=== Главное меню ===")
	m.printf("Вы вошли как: %s (ID=%d), роли: %s\n", p.Account.Login, p.Account.ID, strings.Join(p.Roles.Names(), ", "))
	m.println("0 - Выход")

	if p.Roles.Has(models.RoleEmployee) {
		m.println("1 - Отметить приход")
		m.println("2 - Отметить уход")
		m.println("3 - Посмотреть личный отчёт")
	}
	if p.Roles.Has(models.RoleHR) {
		m.println("4 - Редактировать данные сотрудника")
		m.println("5 - Сформировать табель по всей организации")
	}
	if p.Roles.Has(models.RoleManager) {
		m.println("6 - Просмотреть отчёт по своему подразделению")
	}
	if p.Roles.Has(models.RoleAdmin) {
		m.println("7 - Добавить пользователя для существующего сотрудника")
		m.println("8 - Сформировать табель и экспортировать в CSV")
		m.println("9 - Добавить НОВОГО сотрудника и сразу создать ему пользователя")
	}
}

func (m *Menu) dispatch(p *service.Principal, action service.Action) error {
	switch action {
	case service.ActionClockIn:
		return m.mark(p, models.EventIn, "Приход отмечен.")
	case service.ActionClockOut:
		return m.mark(p, models.EventOut, "Уход отмечен.")
	case service.ActionPersonalReport:
		return m.personalReport(p)
	case service.ActionEditEmployee:
		return m.editEmployee()
	case service.ActionOrgTimesheet:
		return m.orgTimesheet()
	case service.ActionDepartmentTimesheet:
		return m.departmentTimesheet(p)
	case service.ActionCreateUser:
		return m.createUser()
	case service.ActionExportTimesheet:
		return m.exportTimesheet()
	case service.ActionCreateEmployeeWithUser:
		return m.createEmployeeWithUser()
	}
	return nil
}

func (m *Menu) mark(p *service.Principal, kind models.EventKind, done string) error {
	entry, err := m.svc.Tracking.MarkTimeEntry(p.EmployeeID(), kind, m.source)
	if err != nil {
		return err
	}
	m.printf("%s (%s)\n", done, entry.FormatTime())
	return nil
}

func (m *Menu) personalReport(p *service.Principal) error {
	rows, err := m.svc.Reports.GetPersonalReport(p.EmployeeID())
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		m.println("Данные отсутствуют.")
		return nil
	}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{r.WorkDate.String(), models.FormatHours(r.TotalHours), strconv.FormatInt(r.EventsCount, 10)})
	}

	m.println("\nЛичный отчёт:")
	PrintTable(m.out, []string{"Дата", "Часы", "Кол-во отметок"}, table)
	return nil
}

func (m *Menu) editEmployee() error {
	id, ok, err := m.askID("ID сотрудника для редактирования: ")
	if err != nil || !ok {
		return err
	}
	position, err := m.ask("Новая должность (пусто — оставить прежнюю): ")
	if err != nil {
		return err
	}
	department, err := m.ask("Новый отдел (пусто — оставить прежний): ")
	if err != nil {
		return err
	}

	if err := m.svc.Employees.UpdateEmployeeData(id, position, department); err != nil {
		return err
	}
	m.println("Данные обновлены.")
	return nil
}

func (m *Menu) orgTimesheet() error {
	m.println("\nФормирование табеля по всей организации")
	rows, ok, err := m.timesheet(nil, "Нет данных за указанный период.")
	if err != nil || !ok {
		return err
	}
	return m.offerCSV(rows, "Имя файла (например timesheet_all.csv): ", "Табель экспортирован в %s\n")
}

func (m *Menu) departmentTimesheet(p *service.Principal) error {
	department, ok, err := m.svc.Reports.GetDepartmentOfEmployee(p.EmployeeID())
	if err != nil {
		return err
	}
	if !ok {
		m.println("Не удалось определить ваш отдел.")
		return nil
	}

	m.printf("\nТабель по отделу: %s\n", department)
	rows, ok, err := m.timesheet(&department, "Нет данных за период.")
	if err != nil || !ok {
		return err
	}
	return m.offerCSV(rows, "Имя файла (например dept_report.csv): ", "Отчёт отдела экспортирован в %s\n")
}

func (m *Menu) exportTimesheet() error {
	m.println("\nГлобальный табель")
	rows, ok, err := m.timesheet(nil, "Нет данных за период.")
	if err != nil || !ok {
		return err
	}

	filename, err := m.ask("Имя CSV файла (например timesheet_global.csv): ")
	if err != nil {
		return err
	}
	return m.saveCSV(filename, rows, "Табель экспортирован в %s\n")
}

// timesheet спрашивает период, печатает табель; ok == false, если печатать нечего
func (m *Menu) timesheet(department *string, empty string) ([]models.TimesheetRow, bool, error) {
	from, to, ok, err := m.askPeriod()
	if err != nil || !ok {
		return nil, false, err
	}

	rows, err := m.svc.Reports.GenerateTimesheet(from, to, department)
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		m.println(empty)
		return nil, false, nil
	}

	PrintTable(m.out, []string{"Отдел", "ФИО", "Дата", "Часы"}, TimesheetTable(rows))
	return rows, true, nil
}

// TimesheetTable строки табеля для PrintTable
func TimesheetTable(rows []models.TimesheetRow) [][]string {
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{r.Department, r.FullName, r.WorkDate.String(), models.FormatHours(r.Hours)})
	}
	return table
}

func (m *Menu) offerCSV(rows []models.TimesheetRow, prompt, done string) error {
	answer, err := m.ask("Экспортировать в CSV? (y/n): ")
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "y" {
		return nil
	}

	filename, err := m.ask(prompt)
	if err != nil {
		return err
	}
	return m.saveCSV(filename, rows, done)
}

func (m *Menu) saveCSV(filename string, rows []models.TimesheetRow, done string) error {
	if filename == "" {
		m.println("Имя файла не указано.")
		return nil
	}

	err := export.WriteFile(filename, func(w io.Writer) error {
		return export.WriteTimesheetCSV(w, rows)
	})
	if err != nil {
		return err
	}
	m.printf(done, filename)
	return nil
}

func (m *Menu) createUser() error {
	id, ok, err := m.askID("ID существующего сотрудника: ")
	if err != nil || !ok {
		return err
	}
	if err := m.askAccount(id); err != nil {
		return err
	}
	m.println("Пользователь создан.")
	return nil
}

func (m *Menu) createEmployeeWithUser() error {
	m.println("\n=== Добавление нового сотрудника ===")

	fields := make([]string, 0, 5)
	for _, prompt := range []string{"Фамилия: ", "Имя: ", "Отчество (можно пусто): ", "Должность: ", "Отдел: "} {
		value, err := m.ask(prompt)
		if err != nil {
			return err
		}
		fields = append(fields, value)
	}

	id, err := m.svc.Employees.CreateEmployee(fields[0], fields[1], fields[2], fields[3], fields[4])
	if err != nil {
		return err
	}
	m.printf("Сотрудник создан с ID=%d\n", id)

	m.println("\nСоздание учётной записи для этого сотрудника:")
	if err := m.askAccount(id); err != nil {
		return err
	}
	m.println("Пользователь для нового сотрудника создан.")
	return nil
}

func (m *Menu) askAccount(employeeID uint) error {
	login, err := m.ask("Логин: ")
	if err != nil {
		return err
	}
	password, err := m.ask("Пароль: ")
	if err != nil {
		return err
	}
	m.printf("Доступные роли: %s\n", models.RoleList())
	role, err := m.ask("Роль: ")
	if err != nil {
		return err
	}

	_, err = m.svc.Accounts.CreateUserWithRole(employeeID, login, password, role)
	return err
}

func (m *Menu) askID(prompt string) (uint, bool, error) {
	raw, err := m.ask(prompt)
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		m.println("Некорректный ID.")
		return 0, false, nil
	}
	return uint(id), true, nil
}

func (m *Menu) askPeriod() (models.Date, models.Date, bool, error) {
	rawFrom, err := m.ask("Дата начала периода (YYYY-MM-DD): ")
	if err != nil {
		return models.Date{}, models.Date{}, false, err
	}
	rawTo, err := m.ask("Дата окончания периода (YYYY-MM-DD): ")
	if err != nil {
		return models.Date{}, models.Date{}, false, err
	}

	from, err := models.ParseDate(rawFrom)
	if err != nil {
		m.println(err.Error())
		return models.Date{}, models.Date{}, false, nil
	}
	to, err := models.ParseDate(rawTo)
	if err != nil {
		m.println(err.Error())
		return models.Date{}, models.Date{}, false, nil
	}
	return from, to, true, nil
}

func (m *Menu) ask(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// report показывает пользователю ошибки предметной области, остальные пишутся в лог
func (m *Menu) report(err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		m.println(appErr.Message)
		return
	}

	m.logger.WithError(err).Error("Menu action failed")
	m.printf("Ошибка: %v\n", err)
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}
