package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MidnightEnd - конец сегмента, означающий полночь следующего дня
const MidnightEnd = "00:00"

// DaySegment - один интервал внутри дня недели ("ЧЧ:ММ")
type DaySegment struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Active bool   `json:"active"`
}

// HasBounds проверяет, что у сегмента заполнены начало и конец
func (s DaySegment) HasBounds() bool {
	return s.Start != "" && s.End != ""
}

// EndsAtMidnight проверяет, что сегмент заканчивается в полночь следующего дня
func (s DaySegment) EndsAtMidnight() bool {
	return s.End == MidnightEnd
}

// Window строит интервал сегмента для календарной даты day.
// Конец "00:00" переносится на полночь следующего дня.
func (s DaySegment) Window(day time.Time) (TimePeriod, bool) {
	if !s.HasBounds() {
		return TimePeriod{}, false
	}

	startHour, startMinute, err := ParseClock(s.Start)
	if err != nil {
		return TimePeriod{}, false
	}

	year, month, date := day.Date()
	loc := day.Location()
	start := time.Date(year, month, date, startHour, startMinute, 0, 0, loc)

	if s.EndsAtMidnight() {
		return NewTimePeriod(start, time.Date(year, month, date+1, 0, 0, 0, 0, loc)), true
	}

	endHour, endMinute, err := ParseClock(s.End)
	if err != nil {
		return TimePeriod{}, false
	}

	return NewTimePeriod(start, time.Date(year, month, date, endHour, endMinute, 0, 0, loc)), true
}

// DayHours - расписание одного дня недели.
// Обычный день состоит из одного сегмента, разделенный (Split) - из нескольких.
type DayHours struct {
	WeekdayNumber int          `json:"weekday_number"`
	Split         bool         `json:"split"`
	Segments      []DaySegment `json:"segments"`
}

// SingleDay создает обычный день с одним сегментом
func SingleDay(weekday int, start, end string, active bool) DayHours {
	return DayHours{
		WeekdayNumber: weekday,
		Segments:      []DaySegment{{Start: start, End: end, Active: active}},
	}
}

// SplitDay создает день из нескольких сегментов (например, смена с перерывом)
func SplitDay(weekday int, segments ...DaySegment) DayHours {
	return DayHours{
		WeekdayNumber: weekday,
		Split:         true,
		Segments:      segments,
	}
}

// IsEmpty проверяет, что запись дня пустая
func (d DayHours) IsEmpty() bool {
	return d.WeekdayNumber == 0 && len(d.Segments) == 0
}

// Single возвращает сегмент обычного дня.
// Запись с несколькими сегментами считается разделенной, даже если Split не выставлен.
func (d DayHours) Single() (DaySegment, bool) {
	if d.Split || len(d.Segments) != 1 {
		return DaySegment{}, false
	}
	return d.Segments[0], true
}

// IsValid проверяет номер дня недели и формат времени сегментов
func (d DayHours) IsValid() bool {
	if d.WeekdayNumber < 1 || d.WeekdayNumber > 7 {
		return false
	}
	if !d.Split && len(d.Segments) > 1 {
		return false
	}
	for _, segment := range d.Segments {
		if _, _, err := ParseClock(segment.Start); err != nil {
			return false
		}
		if _, _, err := ParseClock(segment.End); err != nil {
			return false
		}
	}
	return true
}

// ParseClock разбирает время "ЧЧ:ММ" (допускается "24:00")
func ParseClock(value string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock value %q", value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 24 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}

	if hour == 24 && minute != 0 {
		return 0, 0, fmt.Errorf("invalid clock value %q", value)
	}

	return hour, minute, nil
}

// ISOWeekday возвращает номер дня недели: 1 - понедельник, 7 - воскресенье
func ISOWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

// StartOfDay возвращает полночь календарной даты t в ее часовом поясе
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
