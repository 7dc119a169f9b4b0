package repository

import (
	"context"
	"errors"
	"worker-availability/internal/models"

	"gorm.io/gorm"
)

type WorkerExceptionRepository interface {
	Get(ctx context.Context, mode models.ScheduleMode, workerID, locationID uint) (*models.WorkerException, error)
	Save(ctx context.Context, exception *models.WorkerException) error
	Delete(ctx context.Context, mode models.ScheduleMode, workerID, locationID uint) error
}

type GormWorkerExceptionRepository struct {
	db *gorm.DB
}

func NewGormWorkerExceptionRepository(db *gorm.DB) (*GormWorkerExceptionRepository, error) {
	// Автомиграция для таблицы worker_exceptions
	if err := db.AutoMigrate(&models.WorkerException{}); err != nil {
		return nil, err
	}

	return &GormWorkerExceptionRepository{db: db}, nil
}

// Get возвращает исключения ровно для (mode, worker, location) или nil
func (r *GormWorkerExceptionRepository) Get(ctx context.Context, mode models.ScheduleMode, workerID, locationID uint) (*models.WorkerException, error) {
	var exception models.WorkerException
	err := r.db.WithContext(ctx).
		Where("mode = ? AND worker_id = ? AND location_id = ?", mode, workerID, locationID).
		First(&exception).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exception, nil
}

// Save создает или заменяет список исключений
func (r *GormWorkerExceptionRepository) Save(ctx context.Context, exception *models.WorkerException) error {
	if !exception.IsValid() {
		return ErrInvalidException
	}

	existing, err := r.Get(ctx, exception.Mode, exception.WorkerID, exception.LocationID)
	if err != nil {
		return err
	}
	if existing != nil {
		exception.ID = existing.ID
		exception.CreatedAt = existing.CreatedAt
	}

	return r.db.WithContext(ctx).Save(exception).Error
}

func (r *GormWorkerExceptionRepository) Delete(ctx context.Context, mode models.ScheduleMode, workerID, locationID uint) error {
	return r.db.WithContext(ctx).
		Where("mode = ? AND worker_id = ? AND location_id = ?", mode, workerID, locationID).
		Delete(&models.WorkerException{}).Error
}
