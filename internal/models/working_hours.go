package models

import (
	"time"
)

// ScheduleMode - тип расписания: рабочие часы или перерывы
type ScheduleMode string

const (
	ModeOpen   ScheduleMode = "open"   // Рабочие часы
	ModeClosed ScheduleMode = "closed" // Перерывы / нерабочее время
)

// IsValid проверяет режим расписания
func (m ScheduleMode) IsValid() bool {
	return m == ModeOpen || m == ModeClosed
}

// Идентификаторы для расписаний по умолчанию
const (
	GlobalWorkerID   uint = 0
	GlobalLocationID uint = 0
)

// WorkingHours - недельное расписание сотрудника в филиале.
// WorkerID = 0 означает расписание филиала, LocationID = 0 - глобальное.
type WorkingHours struct {
	ID         uint         `gorm:"primarykey" json:"id"`
	WorkerID   uint         `gorm:"not null;default:0;uniqueIndex:idx_working_hours_scope" json:"worker_id"`
	LocationID uint         `gorm:"not null;default:0;uniqueIndex:idx_working_hours_scope" json:"location_id"`
	Mode       ScheduleMode `gorm:"type:varchar(10);not null;uniqueIndex:idx_working_hours_scope" json:"mode"`
	Hours      []DayHours   `gorm:"serializer:json" json:"hours"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkingHours) TableName() string {
	return "working_hours"
}

// IsEmpty проверяет, что в расписании нет ни одного дня
func (wh *WorkingHours) IsEmpty() bool {
	if wh == nil {
		return true
	}
	for _, day := range wh.Hours {
		if !day.IsEmpty() {
			return false
		}
	}
	return true
}

// DaysFor возвращает записи для дня недели (1..7)
func (wh *WorkingHours) DaysFor(weekday int) []DayHours {
	if wh == nil {
		return nil
	}
	var result []DayHours
	for _, day := range wh.Hours {
		if day.WeekdayNumber == weekday {
			result = append(result, day)
		}
	}
	return result
}

// IsValid проверяет валидность данных
func (wh *WorkingHours) IsValid() bool {
	if !wh.Mode.IsValid() {
		return false
	}
	for _, day := range wh.Hours {
		if !day.IsValid() {
			return false
		}
	}
	return true
}
