package models

import "time"

// Worker - сотрудник, оказывающий услуги
type Worker struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	ChatID    int64     `gorm:"index" json:"chat_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Services []Service `gorm:"many2many:worker_services;" json:"-"`
}

// TableName задает имя таблицы в БД
func (Worker) TableName() string {
	return "workers"
}
