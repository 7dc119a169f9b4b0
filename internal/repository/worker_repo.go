package repository

import (
	"context"
	"errors"
	"worker-availability/internal/models"

	"gorm.io/gorm"
)

type WorkerRepository interface {
	Create(ctx context.Context, worker *models.Worker) error
	GetByID(ctx context.Context, id uint) (*models.Worker, error)
	GetAll(ctx context.Context) ([]models.Worker, error)
}

type GormWorkerRepository struct {
	db *gorm.DB
}

func NewGormWorkerRepository(db *gorm.DB) (*GormWorkerRepository, error) {
	// Автомиграция - создает таблицы если их нет
	if err := db.AutoMigrate(&models.Worker{}); err != nil {
		return nil, err
	}

	return &GormWorkerRepository{db: db}, nil
}

func (r *GormWorkerRepository) Create(ctx context.Context, worker *models.Worker) error {
	if worker.Name == "" {
		return errors.New("имя сотрудника не может быть пустым")
	}
	return r.db.WithContext(ctx).Create(worker).Error
}

// GetByID возвращает сотрудника или nil, если его нет
func (r *GormWorkerRepository) GetByID(ctx context.Context, id uint) (*models.Worker, error) {
	if id == models.GlobalWorkerID {
		return nil, nil
	}

	var worker models.Worker
	result := r.db.WithContext(ctx).First(&worker, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &worker, nil
}

func (r *GormWorkerRepository) GetAll(ctx context.Context) ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.WithContext(ctx).Order("id ASC").Find(&workers).Error
	return workers, err
}
