package service

import (
	"context"
	"testing"
	"worker-availability/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleResolverFallbackChain(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, AvailabilityConfig{})

	env.hours.set(models.ModeOpen, models.GlobalWorkerID, models.GlobalLocationID, models.SingleDay(1, "08:00", "20:00", true))
	env.hours.set(models.ModeOpen, models.GlobalWorkerID, 2, models.SingleDay(1, "09:00", "19:00", true))
	env.hours.set(models.ModeOpen, 7, 2, models.SingleDay(1, "10:00", "18:00", true))

	tests := []struct {
		name       string
		workerID   uint
		locationID uint
		wantStart  string
	}{
		{name: "worker specific", workerID: 7, locationID: 2, wantStart: "10:00"},
		{name: "location default", workerID: 8, locationID: 2, wantStart: "09:00"},
		{name: "global default", workerID: 7, locationID: 3, wantStart: "08:00"},
		{name: "global worker and location", workerID: 0, locationID: 0, wantStart: "08:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, ok := env.resolver.GetWorkingHours(ctx, models.ModeOpen, tt.workerID, tt.locationID)
			require.True(t, ok)
			assert.Equal(t, tt.wantStart, hours.Hours[0].Segments[0].Start)
		})
	}

	_, ok := env.resolver.GetWorkingHours(ctx, models.ModeClosed, 7, 2)
	assert.False(t, ok)
}

func TestScheduleResolverMemoizesLookups(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, AvailabilityConfig{})
	env.hours.set(models.ModeClosed, 7, 2, models.SingleDay(1, "13:00", "14:00", true))

	_, ok := env.resolver.GetWorkingHours(ctx, models.ModeClosed, 7, 2)
	require.True(t, ok)
	_, ok = env.resolver.GetWorkingHours(ctx, models.ModeClosed, 7, 2)
	require.True(t, ok)
	assert.Equal(t, 1, env.hours.getCount())

	// Отсутствие тоже запоминается по каждой области
	_, ok = env.resolver.GetWorkingHours(ctx, models.ModeOpen, 7, 2)
	assert.False(t, ok)
	gets := env.hours.getCount()
	_, ok = env.resolver.GetWorkingHours(ctx, models.ModeOpen, 7, 2)
	assert.False(t, ok)
	assert.Equal(t, gets, env.hours.getCount())

	// После сброса новое расписание сотрудника видно сразу
	env.hours.set(models.ModeOpen, 7, 2, models.SingleDay(1, "09:00", "17:00", true))
	require.NoError(t, env.resolver.Invalidate(ctx, 7, 2))

	hours, ok := env.resolver.GetWorkingHours(ctx, models.ModeOpen, 7, 2)
	require.True(t, ok)
	assert.Equal(t, "09:00", hours.Hours[0].Segments[0].Start)
}

func TestScheduleResolverStoreError(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, AvailabilityConfig{})
	env.hours.set(models.ModeOpen, 7, 2, models.SingleDay(1, "09:00", "17:00", true))
	env.hours.err = errStoreDown

	_, ok := env.resolver.GetWorkingHours(ctx, models.ModeOpen, 7, 2)
	assert.False(t, ok)

	// Ошибка не кэшируется
	env.hours.err = nil
	_, ok = env.resolver.GetWorkingHours(ctx, models.ModeOpen, 7, 2)
	assert.True(t, ok)
}
