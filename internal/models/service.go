package models

import "time"

// Service - услуга, которую можно забронировать
type Service struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Capacity  int       `gorm:"not null;default:0;check:capacity >= 0" json:"capacity"` // 0 - без ограничений
	Duration  int       `gorm:"not null;default:60" json:"duration"`                    // минуты
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Workers []Worker `gorm:"many2many:worker_services;" json:"workers"`
}

func (Service) TableName() string {
	return "services"
}

// IsUnlimited проверяет, что у услуги нет ограничения вместимости
func (s *Service) IsUnlimited() bool {
	return s.Capacity == 0
}

// ClampCapacity ограничивает число свободных сотрудников вместимостью услуги
func (s *Service) ClampCapacity(available int) int {
	if s.IsUnlimited() || available < s.Capacity {
		return available
	}
	return s.Capacity
}

// IsValid проверяет валидность данных
func (s *Service) IsValid() bool {
	if s.Name == "" {
		return false
	}
	if s.Capacity < 0 {
		return false
	}
	if s.Duration <= 0 || s.Duration > 1440 {
		return false
	}
	return true
}
