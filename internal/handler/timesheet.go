package handler

import (
	"bytes"
	"fmt"

	"worktime/internal/console"
	"worktime/internal/models"
	"worktime/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// timesheet HR и Admin видят всю организацию, Manager только свой отдел
func (h *Handler) timesheet(message *tgbotapi.Message, args []string) {
	chatID := message.Chat.ID
	p := h.principal(chatID)
	if p == nil {
		return
	}

	orgWide := service.CanViewOrgTimesheet(p.Roles)
	if !orgWide && !h.allowed(chatID, p, service.ActionDepartmentTimesheet) {
		return
	}

	if len(args) != 2 {
		h.send(chatID, "Использование: /timesheet <YYYY-MM-DD> <YYYY-MM-DD>")
		return
	}
	from, err := models.ParseDate(args[0])
	if err != nil {
		h.send(chatID, "❌ "+err.Error())
		return
	}
	to, err := models.ParseDate(args[1])
	if err != nil {
		h.send(chatID, "❌ "+err.Error())
		return
	}

	var (
		title string
		rows  []models.TimesheetRow
	)
	if orgWide {
		title = "📋 Табель по всей организации"
		rows, err = h.services.Reports.GenerateTimesheet(from, to, nil)
	} else {
		var department string
		department, rows, err = h.services.Reports.GetDepartmentTimesheet(p.EmployeeID(), from, to)
		title = "📋 Табель по отделу: " + department
	}
	if err != nil {
		h.sendError(chatID, err)
		return
	}
	if len(rows) == 0 {
		h.send(chatID, "Нет данных за указанный период.")
		return
	}

	var buf bytes.Buffer
	console.PrintTable(&buf, []string{"Отдел", "ФИО", "Дата", "Часы"}, console.TimesheetTable(rows))
	h.sendPre(chatID, fmt.Sprintf("%s\n%s - %s", title, from, to), buf.String())
}
