package repository

import (
	"context"
	"errors"
	"worker-availability/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	GetAll(ctx context.Context) ([]models.Service, error)
	GetWorkers(ctx context.Context, serviceID uint) ([]models.Worker, error)
	AssignWorker(ctx context.Context, serviceID, workerID uint) error
}

type GormServiceRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormServiceRepository(db *gorm.DB) (*GormServiceRepository, error) {
	logger := logrus.StandardLogger()

	if err := db.AutoMigrate(&models.Worker{}, &models.Service{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate services table")
		return nil, err
	}

	return &GormServiceRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormServiceRepository) Create(ctx context.Context, service *models.Service) error {
	if !service.IsValid() {
		r.logger.WithFields(logrus.Fields{
			"name":     service.Name,
			"capacity": service.Capacity,
		}).Warn("Invalid service data")
		return ErrInvalidService
	}

	return r.db.WithContext(ctx).Create(service).Error
}

// GetByID возвращает услугу или nil, если ее нет
func (r *GormServiceRepository) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	result := r.db.WithContext(ctx).First(&service, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("id", id).Debug("Service not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get service by ID")
		return nil, result.Error
	}

	return &service, nil
}

// GetAll возвращает все услуги вместе с сотрудниками
func (r *GormServiceRepository) GetAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).Preload("Workers").Order("id ASC").Find(&services).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to get services")
		return nil, err
	}

	return services, nil
}

// GetWorkers возвращает сотрудников, которые оказывают услугу
func (r *GormServiceRepository) GetWorkers(ctx context.Context, serviceID uint) ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.WithContext(ctx).
		Joins("JOIN worker_services ON worker_services.worker_id = workers.id").
		Where("worker_services.service_id = ?", serviceID).
		Order("workers.id ASC").
		Find(&workers).Error
	if err != nil {
		r.logger.WithError(err).WithField("service_id", serviceID).Error("Failed to get workers by service")
		return nil, err
	}

	return workers, nil
}

func (r *GormServiceRepository) AssignWorker(ctx context.Context, serviceID, workerID uint) error {
	service := models.Service{ID: serviceID}
	worker := models.Worker{ID: workerID}

	if err := r.db.WithContext(ctx).Model(&service).Association("Workers").Append(&worker); err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"service_id": serviceID,
			"worker_id":  workerID,
		}).Error("Failed to assign worker to service")
		return err
	}

	return nil
}
