package service

import (
	"context"
	"fmt"
	"worker-availability/internal/cache"
	"worker-availability/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const envelopeKeyPrefix = "min_max_working_hours"

// EnvelopeCache хранит границы рабочего дня по сотруднику и филиалу.
// Записи не устаревают сами, их сбрасывает Invalidate при изменении расписания.
type EnvelopeCache struct {
	store    cache.Store
	resolver *ScheduleResolver
	group    singleflight.Group
	logger   *logrus.Logger
}

func NewEnvelopeCache(store cache.Store, resolver *ScheduleResolver) *EnvelopeCache {
	return &EnvelopeCache{
		store:    store,
		resolver: resolver,
		logger:   logrus.StandardLogger(),
	}
}

// envelopeGenerationKey хранит номер поколения; смена поколения сбрасывает все границы разом
const envelopeGenerationKey = envelopeKeyPrefix + ":generation"

func envelopeKey(generation int64, workerID, locationID uint) string {
	return fmt.Sprintf("%s:%d:%d-%d", envelopeKeyPrefix, generation, workerID, locationID)
}

func (c *EnvelopeCache) generation(ctx context.Context) int64 {
	var generation int64
	if _, err := cache.GetJSON(ctx, c.store, envelopeGenerationKey, &generation); err != nil {
		c.logger.WithError(err).Warn("Failed to read envelope generation")
	}
	return generation
}

// Get возвращает границы из кэша или вычисляет их по рабочим часам.
// Отсутствие расписания не кэшируется.
func (c *EnvelopeCache) Get(ctx context.Context, workerID, locationID uint) (models.Envelope, bool) {
	key := envelopeKey(c.generation(ctx), workerID, locationID)

	var cached models.Envelope
	ok, err := cache.GetJSON(ctx, c.store, key, &cached)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to read cached envelope")
	} else if ok {
		return cached, true
	}

	value, _, _ := c.group.Do(key, func() (interface{}, error) {
		hours, found := c.resolver.GetWorkingHours(ctx, models.ModeOpen, workerID, locationID)
		if !found {
			return nil, nil
		}

		envelope := ComputeEnvelope(hours.Hours)
		if err := cache.SetJSON(ctx, c.store, key, envelope); err != nil {
			c.logger.WithError(err).WithField("key", key).Warn("Failed to cache envelope")
		}
		return &envelope, nil
	})

	envelope, _ := value.(*models.Envelope)
	if envelope == nil {
		return models.Envelope{}, false
	}
	return *envelope, true
}

func (c *EnvelopeCache) Invalidate(ctx context.Context, workerID, locationID uint) error {
	return c.store.Delete(ctx, envelopeKey(c.generation(ctx), workerID, locationID))
}

// InvalidateAll сбрасывает границы всех сотрудников. Нужен при изменении расписания
// филиала или глобального расписания, от которых зависят сотрудники без своих часов.
// Записи прошлого поколения больше не читаются.
func (c *EnvelopeCache) InvalidateAll(ctx context.Context) error {
	var generation int64
	if _, err := cache.GetJSON(ctx, c.store, envelopeGenerationKey, &generation); err != nil {
		return err
	}
	return cache.SetJSON(ctx, c.store, envelopeGenerationKey, generation+1)
}

// ComputeEnvelope вычисляет минимальный час начала и максимальный час окончания.
// Неполные сегменты пропускаются, "22:10" округляется до 23, конец "00:00" дает 24.
func ComputeEnvelope(days []models.DayHours) models.Envelope {
	minHour, maxHour := 24, 0

	for _, day := range days {
		if day.IsEmpty() {
			continue
		}

		for _, segment := range day.Segments {
			if !segment.HasBounds() {
				continue
			}

			startHour, _, err := models.ParseClock(segment.Start)
			if err != nil {
				continue
			}
			endHour, endMinute, err := models.ParseClock(segment.End)
			if err != nil {
				continue
			}

			if endMinute != 0 && endHour != 24 {
				endHour++
			}

			if startHour < minHour {
				minHour = startHour
			}
			if endHour > maxHour {
				maxHour = endHour
			}

			if endHour == 0 && endMinute == 0 {
				maxHour = 24
			}
		}
	}

	return models.Envelope{Min: minHour, Max: maxHour}
}
