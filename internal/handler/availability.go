package handler

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// showCapacity показывает число свободных сотрудников для услуги
func (h *Handler) showCapacity(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	parts := strings.Fields(args)
	if len(parts) != 5 {
		h.reply(chatID, "❌ Неверный формат. Используйте: /capacity услуга филиал ДД.ММ.ГГГГ ЧЧ:ММ ЧЧ:ММ")
		return
	}

	serviceID, locationID, err := parseScope(parts[0], parts[1])
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	period, err := parseInterval(parts[2], parts[3], parts[4], h.location)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	count := h.availability.AvailableWorkerCount(ctx, period.Start, period.End, serviceID, locationID)

	logrus.WithFields(logrus.Fields{
		"chat_id":     chatID,
		"service_id":  serviceID,
		"location_id": locationID,
		"available":   count,
	}).Info("Capacity requested")

	h.reply(chatID, fmt.Sprintf("📊 Услуга %d, филиал %d\n🕐 %s\n\n👥 Свободно сотрудников: %d",
		serviceID, locationID, formatPeriod(period), count))
}

// showWorkerStatus показывает, выходной или перерыв у сотрудника в интервале
func (h *Handler) showWorkerStatus(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	parts := strings.Fields(args)
	if len(parts) != 5 {
		h.reply(chatID, "❌ Неверный формат. Используйте: /worker сотрудник филиал ДД.ММ.ГГГГ ЧЧ:ММ ЧЧ:ММ")
		return
	}

	workerID, locationID, err := parseScope(parts[0], parts[1])
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	period, err := parseInterval(parts[2], parts[3], parts[4], h.location)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	holiday := h.availability.IsHoliday(ctx, period.Start, period.End, workerID, locationID)
	breakTime := h.availability.IsBreak(ctx, period.Start, period.End, workerID, locationID)

	h.reply(chatID, fmt.Sprintf("👤 Сотрудник %d, филиал %d\n🕐 %s\n\n🏖️ Выходной: %s\n☕ Перерыв: %s",
		workerID, locationID, formatPeriod(period), yesNo(holiday), yesNo(breakTime)))
}

// showEnvelope показывает самый ранний и самый поздний час работы за неделю
func (h *Handler) showEnvelope(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.reply(chatID, "❌ Неверный формат. Используйте: /envelope сотрудник филиал")
		return
	}

	workerID, locationID, err := parseScope(parts[0], parts[1])
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	envelope, found := h.availability.MinMaxWorkingHours(ctx, workerID, locationID)
	if !found {
		h.reply(chatID, fmt.Sprintf("📭 Расписание для сотрудника %d в филиале %d не найдено.", workerID, locationID))
		return
	}

	h.reply(chatID, fmt.Sprintf("⏰ Сотрудник %d, филиал %d\n\nНачало: %02d:00\nКонец: %02d:00",
		workerID, locationID, envelope.Min, envelope.Max))
}

// showHolidays показывает выходные дни, заданные ровно для сотрудника и филиала
func (h *Handler) showHolidays(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.reply(chatID, "❌ Неверный формат. Используйте: /holidays сотрудник филиал")
		return
	}

	workerID, locationID, err := parseScope(parts[0], parts[1])
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	dates, err := h.exceptions.GetHolidays(ctx, workerID, locationID)
	if err != nil {
		logrus.WithError(err).Error("Failed to load holidays")
		h.reply(chatID, "❌ Ошибка получения выходных: "+err.Error())
		return
	}

	if len(dates) == 0 {
		h.reply(chatID, "📭 Выходные дни не заданы.")
		return
	}

	response := fmt.Sprintf("🏖️ Выходные сотрудника %d в филиале %d:\n\n", workerID, locationID)
	for _, date := range dates {
		response += fmt.Sprintf("• %s\n", date)
	}

	h.reply(chatID, response)
}

func yesNo(value bool) string {
	if value {
		return "да"
	}
	return "нет"
}
