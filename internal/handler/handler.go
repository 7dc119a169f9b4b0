package handler

import (
	"context"
	"time"
	"worker-availability/internal/config"
	"worker-availability/internal/service"
	"worker-availability/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	client       *telegram.Client
	availability *service.AvailabilityService
	schedules    *service.WorkingHoursService
	exceptions   *service.ExceptionService
	staff        *service.StaffService
	config       *config.Config
	location     *time.Location
}

func NewHandler(
	client *telegram.Client,
	availability *service.AvailabilityService,
	schedules *service.WorkingHoursService,
	exceptions *service.ExceptionService,
	staff *service.StaffService,
	cfg *config.Config,
) *Handler {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		client:       client,
		availability: availability,
		schedules:    schedules,
		exceptions:   exceptions,
		staff:        staff,
		config:       cfg,
		location:     location,
	}
}

// HandleUpdates обрабатывает сообщения, пока не закроется канал или не отменится контекст
func (h *Handler) HandleUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			h.handleMessage(ctx, update.Message)
		}
	}
}

func (h *Handler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From != nil {
		logrus.Infof("[%s] %s", message.From.UserName, message.Text)
	}

	if !message.IsCommand() {
		h.reply(message.Chat.ID, "Используйте /help для списка команд.")
		return
	}

	h.handleCommand(ctx, message)
}

// reply отправляет ответ и логирует ошибку отправки
func (h *Handler) reply(chatID int64, text string) {
	if err := h.client.Send(chatID, text); err != nil {
		logrus.WithError(err).WithField("chat_id", chatID).Error("Failed to send message")
	}
}

func (h *Handler) isAdmin(chatID int64) bool {
	return chatID == h.config.BaseAdminChatID
}

// requireAdmin отвечает отказом, если команду прислал не администратор
func (h *Handler) requireAdmin(chatID int64) bool {
	if h.isAdmin(chatID) {
		return true
	}

	h.reply(chatID, "❌ Доступ запрещен. Эта команда только для администраторов.")
	return false
}
