package models

import "time"

// TimePeriod - интервал времени с включительными границами.
// Начало не обязано быть раньше конца: вырожденный период длины ноль допустим.
type TimePeriod struct {
	Start time.Time
	End   time.Time
}

func NewTimePeriod(start, end time.Time) TimePeriod {
	return TimePeriod{Start: start, End: end}
}

// Contains проверяет, что [subStart, subEnd] целиком лежит внутри периода
func (p TimePeriod) Contains(subStart, subEnd time.Time) bool {
	return !subStart.Before(p.Start) && !subEnd.After(p.End)
}

// IsZeroLength проверяет, что начало и конец совпадают
func (p TimePeriod) IsZeroLength() bool {
	return p.Start.Equal(p.End)
}
