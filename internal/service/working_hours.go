package service

import (
	"context"
	"worker-availability/internal/models"
	"worker-availability/internal/repository"

	"github.com/sirupsen/logrus"
)

// WorkingHoursService сохраняет расписания и сбрасывает зависящий от них кэш
type WorkingHoursService struct {
	repo         repository.WorkingHoursRepository
	availability *AvailabilityService
	logger       *logrus.Logger
}

func NewWorkingHoursService(repo repository.WorkingHoursRepository, availability *AvailabilityService) *WorkingHoursService {
	return &WorkingHoursService{
		repo:         repo,
		availability: availability,
		logger:       logrus.StandardLogger(),
	}
}

// SaveDay заменяет запись одного дня недели в расписании
func (s *WorkingHoursService) SaveDay(ctx context.Context, mode models.ScheduleMode, workerID, locationID uint, day models.DayHours) (*models.WorkingHours, error) {
	s.logger.WithFields(logrus.Fields{
		"mode":        mode,
		"worker_id":   workerID,
		"location_id": locationID,
		"weekday":     day.WeekdayNumber,
		"split":       day.Split,
	}).Info("Updating working hours day")

	hours, err := s.repo.Get(ctx, mode, workerID, locationID)
	if err != nil {
		return nil, err
	}

	if hours == nil {
		hours = &models.WorkingHours{
			WorkerID:   workerID,
			LocationID: locationID,
			Mode:       mode,
		}
	}

	replaced := make([]models.DayHours, 0, len(hours.Hours)+1)
	for _, existing := range hours.Hours {
		if existing.WeekdayNumber != day.WeekdayNumber {
			replaced = append(replaced, existing)
		}
	}
	hours.Hours = append(replaced, day)

	if err := s.Save(ctx, hours); err != nil {
		return nil, err
	}

	return hours, nil
}

// Save сохраняет расписание целиком
func (s *WorkingHoursService) Save(ctx context.Context, hours *models.WorkingHours) error {
	if err := s.repo.Save(ctx, hours); err != nil {
		s.logger.WithError(err).Error("Failed to save working hours")
		return err
	}

	if err := s.availability.InvalidateWorker(ctx, hours.WorkerID, hours.LocationID); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate cached schedule data")
	}

	return nil
}
