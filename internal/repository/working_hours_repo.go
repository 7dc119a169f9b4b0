package repository

import (
	"context"
	"errors"
	"worker-availability/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type WorkingHoursRepository interface {
	Get(ctx context.Context, mode models.ScheduleMode, workerID, locationID uint) (*models.WorkingHours, error)
	Save(ctx context.Context, hours *models.WorkingHours) error
	Delete(ctx context.Context, mode models.ScheduleMode, workerID, locationID uint) error
}

type GormWorkingHoursRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormWorkingHoursRepository(db *gorm.DB) (*GormWorkingHoursRepository, error) {
	logger := logrus.StandardLogger()

	// Автомиграция
	if err := db.AutoMigrate(&models.WorkingHours{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate working_hours table")
		return nil, err
	}

	logger.Debug("Working hours repository initialized")

	return &GormWorkingHoursRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Get возвращает расписание ровно для (mode, worker, location) или nil
func (r *GormWorkingHoursRepository) Get(ctx context.Context, mode models.ScheduleMode, workerID, locationID uint) (*models.WorkingHours, error) {
	var hours models.WorkingHours
	result := r.db.WithContext(ctx).
		Where("mode = ? AND worker_id = ? AND location_id = ?", mode, workerID, locationID).
		First(&hours)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get working hours")
		return nil, result.Error
	}

	return &hours, nil
}

// Save создает или заменяет расписание для (mode, worker, location)
func (r *GormWorkingHoursRepository) Save(ctx context.Context, hours *models.WorkingHours) error {
	fields := logrus.Fields{
		"mode":        hours.Mode,
		"worker_id":   hours.WorkerID,
		"location_id": hours.LocationID,
	}

	if !hours.IsValid() {
		r.logger.WithFields(fields).Warn("Invalid working hours data")
		return ErrInvalidSchedule
	}

	existing, err := r.Get(ctx, hours.Mode, hours.WorkerID, hours.LocationID)
	if err != nil {
		return err
	}

	if existing != nil {
		hours.ID = existing.ID
		hours.CreatedAt = existing.CreatedAt
	}

	if err := r.db.WithContext(ctx).Save(hours).Error; err != nil {
		r.logger.WithError(err).WithFields(fields).Error("Failed to save working hours")
		return err
	}

	r.logger.WithFields(fields).Info("Working hours saved")
	return nil
}

func (r *GormWorkingHoursRepository) Delete(ctx context.Context, mode models.ScheduleMode, workerID, locationID uint) error {
	result := r.db.WithContext(ctx).
		Where("mode = ? AND worker_id = ? AND location_id = ?", mode, workerID, locationID).
		Delete(&models.WorkingHours{})

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete working hours")
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
