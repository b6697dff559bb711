package handler

import (
	"bytes"
	"strconv"

	"worktime/internal/console"
	"worktime/internal/models"
	"worktime/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) clockIn(message *tgbotapi.Message) {
	h.mark(message, models.EventIn, service.ActionClockIn, "✅ Приход отмечен: ")
}

func (h *Handler) clockOut(message *tgbotapi.Message) {
	h.mark(message, models.EventOut, service.ActionClockOut, "✅ Уход отмечен: ")
}

func (h *Handler) mark(message *tgbotapi.Message, kind models.EventKind, action service.Action, done string) {
	chatID := message.Chat.ID
	p := h.principal(chatID)
	if p == nil || !h.allowed(chatID, p, action) {
		return
	}

	entry, err := h.services.Tracking.MarkTimeEntry(p.EmployeeID(), kind, clockSource)
	if err != nil {
		h.sendError(chatID, err)
		return
	}
	h.send(chatID, done+entry.FormatTime())
}

func (h *Handler) personalReport(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	p := h.principal(chatID)
	if p == nil || !h.allowed(chatID, p, service.ActionPersonalReport) {
		return
	}

	rows, err := h.services.Reports.GetPersonalReport(p.EmployeeID())
	if err != nil {
		h.sendError(chatID, err)
		return
	}
	if len(rows) == 0 {
		h.send(chatID, "Данные отсутствуют.")
		return
	}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{r.WorkDate.String(), models.FormatHours(r.TotalHours), strconv.FormatInt(r.EventsCount, 10)})
	}

	var buf bytes.Buffer
	console.PrintTable(&buf, []string{"Дата", "Часы", "Отметок"}, table)
	h.sendPre(chatID, "📊 Личный отчёт", buf.String())
}

func (h *Handler) absences(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	p := h.principal(chatID)
	if p == nil {
		return
	}

	list, err := h.services.Absences.GetAbsencesForEmployee(p.EmployeeID())
	if err != nil {
		h.sendError(chatID, err)
		return
	}
	if len(list) == 0 {
		h.send(chatID, "Отсутствий нет.")
		return
	}

	table := make([][]string, 0, len(list))
	for _, a := range list {
		table = append(table, []string{a.TypeName, a.DateFrom.String(), a.DateTo.String(), models.StringValue(a.Status)})
	}

	var buf bytes.Buffer
	console.PrintTable(&buf, []string{"Тип", "С даты", "По дату", "Статус"}, table)
	h.sendPre(chatID, "🏖 Мои отсутствия", buf.String())
}
