package service

import (
	"context"
	"time"
	"worker-availability/internal/models"
	"worker-availability/pkg/holidays"

	"github.com/sirupsen/logrus"
)

// IsHoliday проверяет, попадает ли начало или конец интервала на день-исключение сотрудника.
// Результат всегда проходит через HolidayOverride, его ответ окончательный.
func (s *AvailabilityService) IsHoliday(ctx context.Context, start, end time.Time, workerID, locationID uint) bool {
	start, end = s.localize(start, end)

	days := s.holidayDates(ctx, workerID, locationID)
	isHoliday := holidays.ContainsDate(days, start.Format(holidays.DateLayout)) ||
		holidays.ContainsDate(days, end.Format(holidays.DateLayout))

	return s.holidayOverride(isHoliday, start, end, workerID)
}

// holidayDates возвращает выходные дни сотрудника, а для отсутствующего сотрудника - общие
func (s *AvailabilityService) holidayDates(ctx context.Context, workerID, locationID uint) []string {
	worker, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		s.logger.WithError(err).WithField("worker_id", workerID).Warn("Failed to load worker, using global exceptions")
		worker = nil
	}

	ownerID := models.GlobalWorkerID
	if worker != nil {
		ownerID = worker.ID
	}

	scopes := []uint{locationID}
	if locationID != models.GlobalLocationID {
		scopes = append(scopes, models.GlobalLocationID)
	}

	for _, scopeLocation := range scopes {
		exception, err := s.exceptions.Get(ctx, models.ModeClosed, ownerID, scopeLocation)
		if err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"worker_id":   ownerID,
				"location_id": scopeLocation,
			}).Warn("Failed to load worker exceptions")
			return nil
		}
		if exception != nil {
			return exception.Dates()
		}
	}

	return nil
}

// IsBreak проверяет, приходится ли интервал на перерыв сотрудника.
//
// Для обычного дня перерыв засчитывается, когда окно перерыва целиком лежит внутри интервала.
// Для разделенного дня - когда интервал целиком лежит внутри одного из активных сегментов.
func (s *AvailabilityService) IsBreak(ctx context.Context, start, end time.Time, workerID, locationID uint) bool {
	start, end = s.localize(start, end)

	breaks, ok := s.resolver.GetWorkingHours(ctx, models.ModeClosed, workerID, locationID)
	if !ok || breaks.IsEmpty() {
		return false
	}

	query := models.NewTimePeriod(start, end)

	for _, day := range breaks.DaysFor(models.ISOWeekday(start)) {
		if segment, single := day.Single(); single {
			if !segment.Active {
				continue
			}
			window, ok := segment.Window(start)
			if !ok {
				continue
			}
			if query.Contains(window.Start, window.End) {
				return true
			}
			continue
		}

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
