package handler

import (
	"context"
	"fmt"
	"strings"
	"worker-availability/internal/models"
	"worker-availability/pkg/holidays"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// setHours задает часы одного дня недели в расписании
func (h *Handler) setHours(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if !h.requireAdmin(chatID) {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 5 {
		h.reply(chatID, `❌ Неверный формат. Используйте:
/sethours сотрудник филиал open|closed день ЧЧ:ММ-ЧЧ:ММ[,ЧЧ:ММ-ЧЧ:ММ]

Примеры:
/sethours 3 1 open пн 09:00-18:00
/sethours 3 1 closed 1 13:00-14:00,16:00-16:15
/sethours 0 1 open сб 10:00-00:00`)
		return
	}

	workerID, locationID, err := parseScope(parts[0], parts[1])
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	mode := models.ScheduleMode(strings.ToLower(parts[2]))
	if !mode.IsValid() {
		h.reply(chatID, "❌ Режим должен быть open или closed")
		return
	}

	day, err := parseDayHours(parts[3], parts[4])
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	hours, err := h.schedules.SaveDay(ctx, mode, workerID, locationID, day)
	if err != nil {
		logrus.WithError(err).Error("Failed to save working hours")
		h.reply(chatID, "❌ Ошибка сохранения расписания: "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Расписание %s сохранено.\n👤 Сотрудник %d, филиал %d\n📅 Дней в расписании: %d",
		mode, workerID, locationID, len(hours.Hours)))
}

// addHoliday добавляет выходной день сотруднику или филиалу
func (h *Handler) addHoliday(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if !h.requireAdmin(chatID) {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 3 {
		h.reply(chatID, "❌ Неверный формат. Используйте: /holiday сотрудник филиал ДД.ММ.ГГГГ")
		return
	}

	workerID, locationID, err := parseScope(parts[0], parts[1])
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	date, err := parseDate(parts[2], h.location)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	if err := h.exceptions.AddHoliday(ctx, workerID, locationID, date); err != nil {
		logrus.WithError(err).Error("Failed to add holiday")
		h.reply(chatID, "❌ Ошибка добавления выходного: "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Выходной %s добавлен для сотрудника %d в филиале %d",
		date.Format(holidays.DateLayout), workerID, locationID))
}

// addVacation отмечает выходными все дни отпуска или больничного сотрудника
func (h *Handler) addVacation(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if !h.requireAdmin(chatID) {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 4 {
		h.reply(chatID, `❌ Неверный формат. Используйте:
/vacation сотрудник филиал дата_начала дата_окончания

Пример:
/vacation 3 1 01.07.2026 14.07.2026`)
		return
	}

	workerID, locationID, err := parseScope(parts[0], parts[1])
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	startDate, err := parseDate(parts[2], h.location)
	if err != nil {
		h.reply(chatID, "❌ Ошибка парсинга даты начала: "+err.Error())
		return
	}

	endDate, err := parseDate(parts[3], h.location)
	if err != nil {
		h.reply(chatID, "❌ Ошибка парсинга даты окончания: "+err.Error())
		return
	}

	days, err := h.exceptions.AddAbsence(ctx, workerID, locationID, startDate, endDate)
	if err != nil {
		logrus.WithError(err).Error("Failed to add vacation")
		h.reply(chatID, "❌ Ошибка добавления отпуска: "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Отпуск добавлен\n👤 Сотрудник %d, филиал %d\n📅 %s - %s (%d дн.)",
		workerID, locationID, startDate.Format("02.01.2006"), endDate.Format("02.01.2006"), days))
}

// resetCache сбрасывает кэш расписания сотрудника
func (h *Handler) resetCache(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if !h.requireAdmin(chatID) {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.reply(chatID, "❌ Неверный формат. Используйте: /resetcache сотрудник филиал")
		return
	}

	workerID, locationID, err := parseScope(parts[0], parts[1])
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	if err := h.availability.InvalidateWorker(ctx, workerID, locationID); err != nil {
		logrus.WithError(err).Error("Failed to reset cache")
		h.reply(chatID, "❌ Ошибка сброса кэша: "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("🔄 Кэш сотрудника %d в филиале %d сброшен", workerID, locationID))
}
