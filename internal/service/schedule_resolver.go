package service

import (
	"context"
	"fmt"
	"worker-availability/internal/cache"
	"worker-availability/internal/models"
	"worker-availability/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const scheduleKeyPrefix = "working_hours"

// ScheduleResolver находит недельное расписание сотрудника в филиале.
// Порядок поиска: сотрудник в филиале, расписание филиала, глобальное расписание.
type ScheduleResolver struct {
	repo   repository.WorkingHoursRepository
	store  cache.Store
	group  singleflight.Group
	logger *logrus.Logger
}

func NewScheduleResolver(repo repository.WorkingHoursRepository, store cache.Store) *ScheduleResolver {
	return &ScheduleResolver{
		repo:   repo,
		store:  store,
		logger: logrus.StandardLogger(),
	}
}

type scheduleScope struct {
	workerID   uint
	locationID uint
}

func resolutionChain(workerID, locationID uint) []scheduleScope {
	chain := []scheduleScope{{workerID: workerID, locationID: locationID}}
	if workerID != models.GlobalWorkerID {
		chain = append(chain, scheduleScope{workerID: models.GlobalWorkerID, locationID: locationID})
	}
	if locationID != models.GlobalLocationID {
		chain = append(chain, scheduleScope{workerID: models.GlobalWorkerID, locationID: models.GlobalLocationID})
	}
	return chain
}

// GetWorkingHours возвращает расписание или false, если оно нигде не настроено
func (r *ScheduleResolver) GetWorkingHours(ctx context.Context, mode models.ScheduleMode, workerID, locationID uint) (*models.WorkingHours, bool) {
	for _, scope := range resolutionChain(workerID, locationID) {
		hours, err := r.lookup(ctx, mode, scope)
		if err != nil {
			// Ошибку хранилища считаем отсутствием расписания
			r.logger.WithError(err).WithFields(logrus.Fields{
				"mode":        mode,
				"worker_id":   scope.workerID,
				"location_id": scope.locationID,
			}).Error("Failed to load working hours")
			return nil, false
		}
		if hours != nil {
			return hours, true
		}
	}

	r.logger.WithFields(logrus.Fields{
		"mode":        mode,
		"worker_id":   workerID,
		"location_id": locationID,
	}).Debug("No working hours configured")
	return nil, false
}

// Invalidate сбрасывает сохраненные расписания обоих режимов для сотрудника в филиале
func (r *ScheduleResolver) Invalidate(ctx context.Context, workerID, locationID uint) error {
	scope := scheduleScope{workerID: workerID, locationID: locationID}
	return r.store.Delete(ctx,
		scheduleKey(models.ModeOpen, scope),
		scheduleKey(models.ModeClosed, scope),
	)
}

func scheduleKey(mode models.ScheduleMode, scope scheduleScope) string {
	return fmt.Sprintf("%s:%s:%d:%d", scheduleKeyPrefix, mode, scope.workerID, scope.locationID)
}

// cachedHours - запись кэша; Found = false запоминает отсутствие расписания
type cachedHours struct {
	Found bool                 `json:"found"`
	Hours *models.WorkingHours `json:"hours,omitempty"`
}

func (r *ScheduleResolver) lookup(ctx context.Context, mode models.ScheduleMode, scope scheduleScope) (*models.WorkingHours, error) {
	key := scheduleKey(mode, scope)

	var cached cachedHours
	ok, err := cache.GetJSON(ctx, r.store, key, &cached)
	if err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("Failed to read cached working hours")
	} else if ok {
		return cached.Hours, nil
	}

	value, err, _ := r.group.Do(key, func() (interface{}, error) {
		hours, err := r.repo.Get(ctx, mode, scope.workerID, scope.locationID)
		if err != nil {
			return nil, err
		}

		entry := cachedHours{Found: hours != nil, Hours: hours}
		if err := cache.SetJSON(ctx, r.store, key, entry); err != nil {
			r.logger.WithError(err).WithField("key", key).Warn("Failed to cache working hours")
		}
		return hours, nil
	})
	if err != nil {
		return nil, err
	}

	return value.(*models.WorkingHours), nil
}
