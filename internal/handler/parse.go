package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"worker-availability/internal/models"
)

var weekdayNames = map[string]int{
	"пн": 1, "вт": 2, "ср": 3, "чт": 4, "пт": 5, "сб": 6, "вс": 7,
	"mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6, "sun": 7,
}

// parseID парсит неотрицательный идентификатор (0 - общее расписание)
func parseID(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("неверный идентификатор %q", value)
	}
	return uint(id), nil
}

// parseScope парсит пару идентификаторов: сотрудник (или услуга) и филиал
func parseScope(first, location string) (uint, uint, error) {
	id, err := parseID(first)
	if err != nil {
		return 0, 0, err
	}

	locationID, err := parseID(location)
	if err != nil {
		return 0, 0, err
	}

	return id, locationID, nil
}

// parseDate парсит дату ДД.ММ.ГГГГ в часовом поясе loc
func parseDate(dateStr string, loc *time.Location) (time.Time, error) {
	formats := []string{
		"02.01.2006",
		"02-01-2006",
		"2006-01-02",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("неверный формат даты %q. Используйте ДД.ММ.ГГГГ", dateStr)
}

// clockOn возвращает момент времени ЧЧ:ММ в дату day
func clockOn(day time.Time, clock string) (time.Time, error) {
	hour, minute, err := models.ParseClock(clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("неверный формат времени %q. Используйте ЧЧ:ММ", clock)
	}

	year, month, date := day.Date()
	return time.Date(year, month, date, hour, minute, 0, 0, day.Location()), nil
}

// parseInterval строит интервал из даты и двух значений ЧЧ:ММ.
// Конец "00:00" означает полночь следующего дня.
func parseInterval(dateStr, startStr, endStr string, loc *time.Location) (models.TimePeriod, error) {
	day, err := parseDate(dateStr, loc)
	if err != nil {
		return models.TimePeriod{}, err
	}

	start, err := clockOn(day, startStr)
	if err != nil {
		return models.TimePeriod{}, err
	}

	end, err := clockOn(day, endStr)
	if err != nil {
		return models.TimePeriod{}, err
	}

	if endStr == models.MidnightEnd {
		end = end.AddDate(0, 0, 1)
	}

	if end.Before(start) {
		return models.TimePeriod{}, errors.New("время окончания раньше времени начала")
	}

	return models.NewTimePeriod(start, end), nil
}

// parseWeekday парсит день недели: номер 1-7 или сокращение (пн, вт, ... / mon, tue, ...)
func parseWeekday(value string) (int, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	if weekday, ok := weekdayNames[value]; ok {
		return weekday, nil
	}

	weekday, err := strconv.Atoi(value)
	if err != nil || weekday < 1 || weekday > 7 {
		return 0, fmt.Errorf("неверный день недели %q. Используйте 1-7 или пн-вс", value)
	}

	return weekday, nil
}

// parseDayHours парсит часы дня недели вида "09:00-13:00,14:00-18:00".
// Несколько интервалов дают разделенный день.
func parseDayHours(weekdayStr, segmentsStr string) (models.DayHours, error) {
	weekday, err := parseWeekday(weekdayStr)
	if err != nil {
		return models.DayHours{}, err
	}

	var segments []models.DaySegment
	for _, raw := range strings.Split(segmentsStr, ",") {
		bounds := strings.Split(strings.TrimSpace(raw), "-")
		if len(bounds) != 2 {
			return models.DayHours{}, fmt.Errorf("неверный интервал %q. Используйте ЧЧ:ММ-ЧЧ:ММ", raw)
		}

		segment := models.DaySegment{
			Start:  strings.TrimSpace(bounds[0]),
			End:    strings.TrimSpace(bounds[1]),
			Active: true,
		}

		startHour, startMinute, err := models.ParseClock(segment.Start)
		if err != nil {
			return models.DayHours{}, fmt.Errorf("неверное время %q", segment.Start)
		}
		endHour, endMinute, err := models.ParseClock(segment.End)
		if err != nil {
			return models.DayHours{}, fmt.Errorf("неверное время %q", segment.End)
		}
		if !segment.EndsAtMidnight() && endHour*60+endMinute < startHour*60+startMinute {
			return models.DayHours{}, fmt.Errorf("интервал %q заканчивается раньше, чем начинается", raw)
		}

		segments = append(segments, segment)
	}

	var day models.DayHours
	if len(segments) == 1 {
		day = models.SingleDay(weekday, segments[0].Start, segments[0].End, true)
	} else {
		day = models.SplitDay(weekday, segments...)
	}

	if !day.IsValid() {
		return models.DayHours{}, errors.New("неверное расписание дня")
	}

	return day, nil
}

// formatPeriod форматирует интервал для ответа в чат
func formatPeriod(period models.TimePeriod) string {
	end := period.End.Format("15:04")
	if !period.End.Equal(period.Start) && period.End.Format("15:04") == models.MidnightEnd {
		end = "24:00"
	}
	return fmt.Sprintf("%s %s-%s", period.Start.Format("02.01.2006"), period.Start.Format("15:04"), end)
}
