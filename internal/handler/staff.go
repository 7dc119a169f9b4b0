package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// addWorker регистрирует сотрудника
func (h *Handler) addWorker(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if !h.requireAdmin(chatID) {
		return
	}

	workerChatID, name, err := parseWorkerArgs(args)
	if err != nil {
		h.reply(chatID, `❌ Неверный формат. Используйте:
/addworker chat_id имя

chat_id - Telegram ID сотрудника, 0 если его нет.
Пример: /addworker 0 Анна Петрова`)
		return
	}

	worker, err := h.staff.CreateWorker(ctx, name, workerChatID)
	if err != nil {
		logrus.WithError(err).Error("Failed to create worker")
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Сотрудник %s добавлен, ID: %d", worker.Name, worker.ID))
}

// addService создает услугу
func (h *Handler) addService(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if !h.requireAdmin(chatID) {
		return
	}

	capacity, duration, name, err := parseServiceArgs(args)
	if err != nil {
		h.reply(chatID, `❌ Неверный формат. Используйте:
/addservice вместимость минуты название

вместимость 0 - без ограничений.
Пример: /addservice 2 60 Массаж`)
		return
	}

	service, err := h.staff.CreateService(ctx, name, capacity, duration)
	if err != nil {
		logrus.WithError(err).Error("Failed to create service")
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Услуга %s добавлена, ID: %d", service.Name, service.ID))
}

// assignWorker привязывает сотрудника к услуге
func (h *Handler) assignWorker(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if !h.requireAdmin(chatID) {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.reply(chatID, "❌ Неверный формат. Используйте: /assign услуга сотрудник")
		return
	}

	serviceID, workerID, err := parseScope(parts[0], parts[1])
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	if err := h.staff.AssignWorker(ctx, serviceID, workerID); err != nil {
		logrus.WithError(err).Error("Failed to assign worker")
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Сотрудник %d теперь оказывает услугу %d", workerID, serviceID))
}

// showWorkers показывает всех сотрудников
func (h *Handler) showWorkers(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if !h.requireAdmin(chatID) {
		return
	}

	text, err := h.staff.FormatAllWorkers(ctx)
	if err != nil {
		h.reply(chatID, "❌ Ошибка получения списка сотрудников: "+err.Error())
		return
	}

	h.reply(chatID, text)
}

// showServices показывает все услуги
func (h *Handler) showServices(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	text, err := h.staff.FormatAllServices(ctx)
	if err != nil {
		h.reply(chatID, "❌ Ошибка получения списка услуг: "+err.Error())
		return
	}

	h.reply(chatID, text)
}

// parseWorkerArgs разбирает "chat_id имя"
func parseWorkerArgs(args string) (int64, string, error) {
	parts := strings.Fields(args)
	if len(parts) < 2 {
		return 0, "", fmt.Errorf("ожидается chat_id и имя")
	}

	chatID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("неверный chat_id %q", parts[0])
	}

	return chatID, strings.Join(parts[1:], " "), nil
}

// parseServiceArgs разбирает "вместимость минуты название"
func parseServiceArgs(args string) (int, int, string, error) {
	parts := strings.Fields(args)
	if len(parts) < 3 {
		return 0, 0, "", fmt.Errorf("ожидается вместимость, длительность и название")
	}

	capacity, err := strconv.Atoi(parts[0])
	if err != nil || capacity < 0 {
		return 0, 0, "", fmt.Errorf("неверная вместимость %q", parts[0])
	}

	duration, err := strconv.Atoi(parts[1])
	if err != nil || duration <= 0 {
		return 0, 0, "", fmt.Errorf("неверная длительность %q", parts[1])
	}

	return capacity, duration, strings.Join(parts[2:], " "), nil
}
