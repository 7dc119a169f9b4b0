package service

import (
	"context"
	"time"
	"worker-availability/internal/models"

	"github.com/sirupsen/logrus"
)

// AvailableWorkerCount возвращает, сколько сотрудников могут оказать услугу в интервале,
// с учетом вместимости услуги. Записи клиентов здесь не учитываются.
func (s *AvailabilityService) AvailableWorkerCount(ctx context.Context, start, end time.Time, serviceID, locationID uint) int {
	if capacity, forced := s.capacityOverride(serviceID); forced {
		return capacity
	}

	start, end = s.localize(start, end)

	service, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		s.logger.WithError(err).WithField("service_id", serviceID).Warn("Failed to load service")
		service = nil
	}
	if service == nil {
		return 1
	}

	workers, err := s.services.GetWorkers(ctx, serviceID)
	if err != nil {
		s.logger.WithError(err).WithField("service_id", serviceID).Warn("Failed to load workers for service")
		workers = nil
	}
	if len(workers) == 0 {
		return s.defaultCapacity
	}

	available := 0
	for _, worker := range workers {
		if s.IsHoliday(ctx, start, end, worker.ID, locationID) {
			continue
		}
		if s.IsBreak(ctx, start, end, worker.ID, locationID) {
			continue
		}
		if s.isWorkingInterval(ctx, start, end, worker.ID, locationID) {
			available++
		}
	}

	s.logger.WithFields(logrus.Fields{
		"service_id":  serviceID,
		"location_id": locationID,
		"available":   available,
		"capacity":    service.Capacity,
	}).Debug("Counted available workers")

	return service.ClampCapacity(available)
}

// isWorkingInterval проверяет, что интервал целиком попадает в рабочие часы сотрудника
func (s *AvailabilityService) isWorkingInterval(ctx context.Context, start, end time.Time, workerID, locationID uint) bool {
	hours, ok := s.resolver.GetWorkingHours(ctx, models.ModeOpen, workerID, locationID)
	if !ok || hours.IsEmpty() {
		return false
	}

	for _, day := range hours.DaysFor(models.ISOWeekday(start)) {
		for _, segment := range day.Segments {
			if !segment.Active {
				continue
			}
			window, ok := segment.Window(start)
			if !ok {
				continue
			}
			if window.Contains(start, end) {
				return true
			}
		}
	}

	return false
}
