package holidays

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// DateLayout - формат даты в списках исключений (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// CalendarJSON - структура производственного календаря
// Переносы рабочих дней ("transitions") в файле допускаются, но не читаются.
type CalendarJSON struct {
	Year   int            `json:"year"`
	Months []MonthHoliday `json:"months"`
}

type MonthHoliday struct {
	Month int    `json:"month"`
	Days  string `json:"days"`
}

// Holiday - один нерабочий день календаря
type Holiday struct {
	Date  time.Time `json:"date"`
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Day   int       `json:"day"`
}

// DateString возвращает дату в формате YYYY-MM-DD
func (h Holiday) DateString() string {
	return h.Date.Format(DateLayout)
}

// ParseCalendarJSON читает файл календаря и возвращает нерабочие дни
func ParseCalendarJSON(filePath string, loc *time.Location) ([]Holiday, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}

	return ParseCalendar(data, loc)
}

// ParseCalendar разбирает содержимое календаря
func ParseCalendar(data []byte, loc *time.Location) ([]Holiday, error) {
	if loc == nil {
		loc = time.Local
	}

	var calendar CalendarJSON
	if err := json.Unmarshal(data, &calendar); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	result := []Holiday{}

	for _, monthData := range calendar.Months {
		if monthData.Month < 1 || monthData.Month > 12 {
			return nil, fmt.Errorf("invalid month %d", monthData.Month)
		}

		for _, dayStr := range strings.Split(monthData.Days, ",") {
			// Убираем пометки сокращенных (*) и перенесенных (+) дней
			dayStr = strings.TrimSpace(dayStr)
			dayStr = strings.TrimSuffix(dayStr, "+")
			dayStr = strings.TrimSuffix(dayStr, "*")

			if dayStr == "" {
				continue
			}

			day, err := strconv.Atoi(dayStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse day '%s' in month %d: %w",
					dayStr, monthData.Month, err)
			}

			date := time.Date(calendar.Year, time.Month(monthData.Month), day, 0, 0, 0, 0, loc)
			if date.Month() != time.Month(monthData.Month) {
				return nil, fmt.Errorf("day %d does not exist in month %d", day, monthData.Month)
			}

			result = append(result, Holiday{
				Date:  date,
				Year:  calendar.Year,
				Month: monthData.Month,
				Day:   day,
			})
		}
	}

	return result, nil
}

// DateStrings возвращает даты праздников в формате YYYY-MM-DD
func DateStrings(days []Holiday) []string {
	result := make([]string, 0, len(days))
	for _, day := range days {
		result = append(result, day.DateString())
	}
	return result
}

// SplitDays разбирает список дат, разделенных запятыми
func SplitDays(days string) []string {
	result := []string{}
	for _, day := range strings.Split(days, ",") {
		day = strings.TrimSpace(day)
		if day == "" {
			continue
		}
		result = append(result, day)
	}
	return result
}

// JoinDays собирает список дат обратно в строку без дубликатов, сохраняя порядок
func JoinDays(days []string) string {
	seen := make(map[string]struct{}, len(days))
	unique := make([]string, 0, len(days))
	for _, day := range days {
		day = strings.TrimSpace(day)
		if day == "" {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		unique = append(unique, day)
	}
	return strings.Join(unique, ",")
}

// ContainsDate проверяет точное совпадение строки даты со списком
func ContainsDate(days []string, date string) bool {
	for _, day := range days {
		if day == date {
			return true
		}
	}
	return false
}
