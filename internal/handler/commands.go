package handler

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start", "help":
		h.sendHelpMessage(message)

	// Доступность (все пользователи)
	case "capacity":
		h.showCapacity(ctx, message, args)
	case "worker":
		h.showWorkerStatus(ctx, message, args)
	case "envelope":
		h.showEnvelope(ctx, message, args)
	case "holidays":
		h.showHolidays(ctx, message, args)
	case "services":
		h.showServices(ctx, message)

	// Расписания и кэш (админы)
	case "sethours":
		h.setHours(ctx, message, args)
	case "holiday":
		h.addHoliday(ctx, message, args)
	case "vacation":
		h.addVacation(ctx, message, args)
	case "resetcache":
		h.resetCache(ctx, message, args)

	// Сотрудники и услуги (админы)
	case "addworker":
		h.addWorker(ctx, message, args)
	case "addservice":
		h.addService(ctx, message, args)
	case "assign":
		h.assignWorker(ctx, message, args)
	case "workers":
		h.showWorkers(ctx, message)

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, "❌ Неизвестная команда. Используйте /help для списка команд.")
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	text := `📋 Доступные команды:

📊 Доступность:
/capacity услуга филиал ДД.ММ.ГГГГ ЧЧ:ММ ЧЧ:ММ - Сколько сотрудников свободно
/worker сотрудник филиал ДД.ММ.ГГГГ ЧЧ:ММ ЧЧ:ММ - Выходной или перерыв у сотрудника
/envelope сотрудник филиал - Границы рабочего дня за неделю
/holidays сотрудник филиал - Список выходных дней
/services - Список услуг

💡 Сотрудник 0 - расписание филиала, филиал 0 - общее расписание.`

	if h.isAdmin(chatID) {
		text += `

👑 Администратор:
/sethours сотрудник филиал open|closed день ЧЧ:ММ-ЧЧ:ММ[,ЧЧ:ММ-ЧЧ:ММ] - Задать часы дня недели
/holiday сотрудник филиал ДД.ММ.ГГГГ - Добавить выходной
/vacation сотрудник филиал ДД.ММ.ГГГГ ДД.ММ.ГГГГ - Добавить отпуск
/resetcache сотрудник филиал - Сбросить кэш расписания
/addworker chat_id имя - Добавить сотрудника
/addservice вместимость минуты название - Добавить услугу
/assign услуга сотрудник - Назначить сотрудника на услугу
/workers - Список сотрудников`
	}

	h.reply(chatID, text)
}
