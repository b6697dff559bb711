package handler

import (
	"errors"
	"fmt"
	"strings"

	"worktime/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	h.send(message.Chat.ID, "👋 Система учёта рабочего времени.\n\n"+helpText)
}

const helpText = `Команды:
/login <логин> <пароль> - вход
/logout - выход
/in - отметить приход
/out - отметить уход
/report - личный отчёт
/timesheet <с YYYY-MM-DD> <по YYYY-MM-DD> - табель (HR и Admin по организации, Manager по своему отделу)
/absences - мои отсутствия
/help - эта справка`

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	h.send(message.Chat.ID, helpText)
}

func (h *Handler) login(message *tgbotapi.Message, args []string) {
	chatID := message.Chat.ID

	// сообщение с паролем не оставляем в чате
	if _, err := h.sender.Request(tgbotapi.NewDeleteMessage(chatID, message.MessageID)); err != nil {
		h.logger.WithError(err).WithField("chat_id", chatID).Debug("Failed to delete login message")
	}

	if len(args) != 2 {
		h.send(chatID, "Использование: /login <логин> <пароль>")
		return
	}

	principal, err := h.services.Auth.Authenticate(args[0], args[1])
	if errors.Is(err, service.ErrNoMatch) {
		h.send(chatID, "❌ Неверный логин или пароль.")
		return
	}
	if err != nil {
		h.sendError(chatID, err)
		return
	}
	if !principal.CanLogin() {
		h.send(chatID, "⛔ У пользователя нет ролей. Доступ запрещён.")
		return
	}

	h.sessions.Bind(chatID, principal)
	h.send(chatID, fmt.Sprintf("✅ Вы вошли как: %s (ID=%d), роли: %s",
		principal.Account.Login, principal.Account.ID, strings.Join(principal.Roles.Names(), ", ")))
}

func (h *Handler) logout(message *tgbotapi.Message) {
	if !h.sessions.Drop(message.Chat.ID) {
		h.send(message.Chat.ID, "Вы не вошли в систему.")
		return
	}
	h.send(message.Chat.ID, "👋 Вы вышли из системы.")
}
