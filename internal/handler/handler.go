package handler

import (
	"errors"
	"html"
	"strings"

	"worktime/internal/apperror"
	"worktime/internal/service"
	"worktime/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const (
	clockSource = "telegram"
	// Telegram режет сообщения длиннее 4096 символов
	maxMessageLen = 3500
)

type Handler struct {
	sender   telegram.Sender
	services service.Services
	sessions *Sessions
	logger   *logrus.Logger
}

func NewHandler(sender telegram.Sender, services service.Services, logger *logrus.Logger) *Handler {
	return &Handler{
		sender:   sender,
		services: services,
		sessions: NewSessions(),
		logger:   logger,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		h.HandleUpdate(update)
	}
}

func (h *Handler) HandleUpdate(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}
	h.handleMessage(update.Message)
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	username := ""
	if message.From != nil {
		username = message.From.UserName
	}

	if !message.IsCommand() {
		h.send(message.Chat.ID, "Используйте /help для списка команд.")
		return
	}

	// текст /login не пишем в лог целиком
	h.logger.WithFields(logrus.Fields{
		"chat_id":  message.Chat.ID,
		"username": username,
		"command":  message.Command(),
	}).Info("Command received")

	h.handleCommand(message)
}

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	args := strings.Fields(message.CommandArguments())

	switch message.Command() {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.sendHelpMessage(message)
	case "login":
		h.login(message, args)
	case "logout":
		h.logout(message)
	case "in":
		h.clockIn(message)
	case "out":
		h.clockOut(message)
	case "report":
		h.personalReport(message)
	case "timesheet":
		h.timesheet(message, args)
	case "absences":
		h.absences(message)
	default:
		h.send(message.Chat.ID, "❌ Неизвестная команда. Используйте /help для списка команд.")
	}
}

// principal пользователь чата с актуальными ролями; если входа не было
// или учетка заблокирована, отвечает подсказкой и возвращает nil
func (h *Handler) principal(chatID int64) *service.Principal {
	p, ok := h.sessions.Get(chatID)
	if !ok {
		h.send(chatID, "🔒 Сначала войдите: /login <логин> <пароль>")
		return nil
	}

	fresh, err := h.services.Auth.Refresh(p)
	if errors.Is(err, service.ErrNoMatch) {
		h.sessions.Drop(chatID)
		h.send(chatID, "🔒 Учётная запись недоступна, войдите снова: /login <логин> <пароль>")
		return nil
	}
	if err != nil {
		h.sendError(chatID, err)
		return nil
	}
	if !fresh.CanLogin() {
		h.sessions.Drop(chatID)
		h.send(chatID, "⛔ У пользователя нет ролей. Доступ запрещён.")
		return nil
	}

	h.sessions.Bind(chatID, fresh)
	return fresh
}

// allowed проверяет роль; при отказе отвечает пользователю
func (h *Handler) allowed(chatID int64, p *service.Principal, action service.Action) bool {
	if service.Allowed(p.Roles, action) {
		return true
	}
	h.send(chatID, "⛔ У вашей роли нет доступа к этой команде.")
	return false
}

func (h *Handler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.sender.Send(msg); err != nil {
		h.logger.WithError(err).WithField("chat_id", chatID).Error("Failed to send message")
	}
}

// sendPre отправляет моноширинный текст, разбивая его по строкам на части
func (h *Handler) sendPre(chatID int64, title, body string) {
	chunks := splitLines(body, maxMessageLen)
	for i, chunk := range chunks {
		text := "<pre>" + html.EscapeString(chunk) + "</pre>"
		if i == 0 && title != "" {
			text = html.EscapeString(title) + "\n" + text
		}

		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		if _, err := h.sender.Send(msg); err != nil {
			h.logger.WithError(err).WithField("chat_id", chatID).Error("Failed to send message")
			return
		}
	}
}

func splitLines(text string, limit int) []string {
	var chunks []string
	var current strings.Builder

	for _, line := range strings.SplitAfter(text, "\n") {
		if current.Len() > 0 && current.Len()+len(line) > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

// sendError ошибки предметной области уходят пользователю как есть, остальные в лог
func (h *Handler) sendError(chatID int64, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		h.send(chatID, "❌ "+appErr.Message)
		return
	}

	h.logger.WithError(err).WithField("chat_id", chatID).Error("Command failed")
	h.send(chatID, "❌ Внутренняя ошибка, попробуйте позже.")
}
