package models

import (
	"time"

	"worker-availability/pkg/holidays"
)

// WorkerException - список дней-исключений сотрудника в филиале.
// Для режима closed это выходные и праздники, для open - дополнительные рабочие дни.
type WorkerException struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	WorkerID   uint         `gorm:"not null;default:0;uniqueIndex:idx_worker_exception_scope" json:"worker_id"`
	LocationID uint         `gorm:"not null;default:0;uniqueIndex:idx_worker_exception_scope" json:"location_id"`
	Mode       ScheduleMode `gorm:"type:varchar(10);not null;uniqueIndex:idx_worker_exception_scope" json:"mode"`
	Days       string       `gorm:"type:text" json:"days"` // YYYY-MM-DD через запятую
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (WorkerException) TableName() string {
	return "worker_exceptions"
}

// Dates возвращает список дат исключений
func (e *WorkerException) Dates() []string {
	if e == nil {
		return nil
	}
	return holidays.SplitDays(e.Days)
}

// AddDates добавляет даты к списку без дубликатов
func (e *WorkerException) AddDates(dates ...string) {
	e.Days = holidays.JoinDays(append(e.Dates(), dates...))
}

// IsValid проверяет режим и формат дат
func (e *WorkerException) IsValid() bool {
	if !e.Mode.IsValid() {
		return false
	}
	for _, day := range e.Dates() {
		if _, err := time.Parse(holidays.DateLayout, day); err != nil {
			return false
		}
	}
	return true
}
