package service

import (
	"context"
	"errors"
	"time"
	"worker-availability/internal/models"
	"worker-availability/internal/repository"

	"github.com/sirupsen/logrus"
)

// AvailabilityConfig - параметры расчета доступности
type AvailabilityConfig struct {
	DefaultCapacity  int            // вместимость, если у услуги нет сотрудников
	Location         *time.Location // часовой пояс, в котором считаются даты и дни недели
	HolidayOverride  HolidayOverride
	CapacityOverride CapacityOverride
}

// AvailabilityService считает, свободны ли сотрудники в заданный интервал
type AvailabilityService struct {
	workers          repository.WorkerRepository
	services         repository.ServiceRepository
	exceptions       repository.WorkerExceptionRepository
	resolver         *ScheduleResolver
	envelopes        *EnvelopeCache
	defaultCapacity  int
	location         *time.Location
	holidayOverride  HolidayOverride
	capacityOverride CapacityOverride
	logger           *logrus.Logger
}

func NewAvailabilityService(
	workers repository.WorkerRepository,
	services repository.ServiceRepository,
	exceptions repository.WorkerExceptionRepository,
	resolver *ScheduleResolver,
	envelopes *EnvelopeCache,
	cfg AvailabilityConfig,
) *AvailabilityService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.HolidayOverride == nil {
		cfg.HolidayOverride = PassThroughHoliday
	}
	if cfg.CapacityOverride == nil {
		cfg.CapacityOverride = NoCapacityOverride
	}

	return &AvailabilityService{
		workers:          workers,
		services:         services,
		exceptions:       exceptions,
		resolver:         resolver,
		envelopes:        envelopes,
		defaultCapacity:  cfg.DefaultCapacity,
		location:         cfg.Location,
		holidayOverride:  cfg.HolidayOverride,
		capacityOverride: cfg.CapacityOverride,
		logger:           logrus.StandardLogger(),
	}
}

// MinMaxWorkingHours возвращает границы рабочего дня сотрудника за неделю
func (s *AvailabilityService) MinMaxWorkingHours(ctx context.Context, workerID, locationID uint) (models.Envelope, bool) {
	return s.envelopes.Get(ctx, workerID, locationID)
}

// InvalidateWorker сбрасывает кэш после изменения расписания сотрудника.
// Для сотрудника 0 (расписание филиала или глобальное) сбрасываются границы всех сотрудников.
func (s *AvailabilityService) InvalidateWorker(ctx context.Context, workerID, locationID uint) error {
	s.logger.WithFields(logrus.Fields{
		"worker_id":   workerID,
		"location_id": locationID,
	}).Info("Invalidating cached schedule data")

	errs := []error{
		s.envelopes.Invalidate(ctx, workerID, locationID),
		s.resolver.Invalidate(ctx, workerID, locationID),
	}

	// Расписание по умолчанию используют все сотрудники без своих часов
	if workerID == models.GlobalWorkerID {
		errs = append(errs, s.envelopes.InvalidateAll(ctx))
	}

	return errors.Join(errs...)
}

// localize переводит интервал в часовой пояс развертывания
func (s *AvailabilityService) localize(start, end time.Time) (time.Time, time.Time) {
	return start.In(s.location), end.In(s.location)
}
