package service

import (
	"context"
	"fmt"
	"time"
	"worker-availability/internal/models"
	"worker-availability/internal/repository"
	"worker-availability/pkg/holidays"

	"github.com/sirupsen/logrus"
)

// ExceptionService управляет выходными днями сотрудников и филиалов
type ExceptionService struct {
	repo     repository.WorkerExceptionRepository
	location *time.Location
	logger   *logrus.Logger
}

func NewExceptionService(repo repository.WorkerExceptionRepository, location *time.Location) *ExceptionService {
	if location == nil {
		location = time.UTC
	}
	return &ExceptionService{
		repo:     repo,
		location: location,
		logger:   logrus.StandardLogger(),
	}
}

// LoadFromJSON загружает производственный календарь как общие выходные филиала
func (s *ExceptionService) LoadFromJSON(ctx context.Context, filePath string, locationID uint) (int, error) {
	days, err := holidays.ParseCalendarJSON(filePath, s.location)
	if err != nil {
		return 0, err
	}

	if err := s.AddHolidays(ctx, models.GlobalWorkerID, locationID, holidays.DateStrings(days)...); err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"file":        filePath,
		"location_id": locationID,
		"days":        len(days),
	}).Info("Holiday calendar loaded")

	return len(days), nil
}

// AddHolidays добавляет даты (YYYY-MM-DD) в список выходных
func (s *ExceptionService) AddHolidays(ctx context.Context, workerID, locationID uint, dates ...string) error {
	exception, err := s.repo.Get(ctx, models.ModeClosed, workerID, locationID)
	if err != nil {
		return fmt.Errorf("ошибка загрузки исключений: %w", err)
	}

	if exception == nil {
		exception = &models.WorkerException{
			WorkerID:   workerID,
			LocationID: locationID,
			Mode:       models.ModeClosed,
		}
	}

	exception.AddDates(dates...)

	if err := s.repo.Save(ctx, exception); err != nil {
		return fmt.Errorf("ошибка сохранения исключений: %w", err)
	}

	return nil
}

// AddHoliday добавляет один выходной день
func (s *ExceptionService) AddHoliday(ctx context.Context, workerID, locationID uint, date time.Time) error {
	return s.AddHolidays(ctx, workerID, locationID, date.In(s.location).Format(holidays.DateLayout))
}

// AddAbsence добавляет выходными все дни периода отсутствия (отпуск, больничный) включительно
func (s *ExceptionService) AddAbsence(ctx context.Context, workerID, locationID uint, startDate, endDate time.Time) (int, error) {
	startDate = models.StartOfDay(startDate.In(s.location))
	endDate = models.StartOfDay(endDate.In(s.location))

	if endDate.Before(startDate) {
		return 0, fmt.Errorf("дата окончания не может быть раньше даты начала")
	}

	var dates []string
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		dates = append(dates, date.Format(holidays.DateLayout))
	}

	if err := s.AddHolidays(ctx, workerID, locationID, dates...); err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"worker_id":   workerID,
		"location_id": locationID,
		"start_date":  startDate.Format(holidays.DateLayout),
		"end_date":    endDate.Format(holidays.DateLayout),
	}).Info("Absence period added")

	return len(dates), nil
}

// GetHolidays возвращает выходные дни ровно для сотрудника и филиала
func (s *ExceptionService) GetHolidays(ctx context.Context, workerID, locationID uint) ([]string, error) {
	exception, err := s.repo.Get(ctx, models.ModeClosed, workerID, locationID)
	if err != nil {
		return nil, err
	}
	return exception.Dates(), nil
}
