package service

import (
	"context"
	"sync"
	"testing"
	"worker-availability/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEnvelope(t *testing.T) {
	tests := []struct {
		name string
		days []models.DayHours
		want models.Envelope
	}{
		{
			name: "minutes round the end hour up",
			days: []models.DayHours{
				models.SingleDay(1, "09:00", "12:30", true),
				models.SingleDay(2, "13:00", "22:10", true),
			},
			want: models.Envelope{Min: 9, Max: 23},
		},
		{
			name: "end at midnight means end of day",
			days: []models.DayHours{
				models.SingleDay(1, "10:00", "18:00", true),
				models.SingleDay(5, "12:00", "00:00", true),
			},
			want: models.Envelope{Min: 10, Max: 24},
		},
		{
			name: "explicit 24:00 end",
			days: []models.DayHours{models.SingleDay(1, "08:00", "24:00", true)},
			want: models.Envelope{Min: 8, Max: 24},
		},
		{
			name: "inactive days still count",
			days: []models.DayHours{
				models.SingleDay(1, "09:00", "17:00", true),
				models.SingleDay(6, "07:00", "12:00", false),
			},
			want: models.Envelope{Min: 7, Max: 17},
		},
		{
			name: "split day segments",
			days: []models.DayHours{
				models.SplitDay(3, segment("08:30", "12:00"), segment("14:00", "19:45")),
			},
			want: models.Envelope{Min: 8, Max: 20},
		},
		{
			name: "empty and malformed entries are skipped",
			days: []models.DayHours{
				{},
				{WeekdayNumber: 1, Segments: []models.DaySegment{{Start: "09:00"}}},
				models.SingleDay(2, "bad", "18:00", true),
				models.SingleDay(3, "11:00", "16:00", true),
			},
			want: models.Envelope{Min: 11, Max: 16},
		},
		{
			name: "nothing usable",
			days: []models.DayHours{{}},
			want: models.Envelope{Min: 24, Max: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeEnvelope(tt.days))
		})
	}
}

func TestEnvelopeCache(t *testing.T) {
	ctx := context.Background()

	t.Run("cached result is reused", func(t *testing.T) {
		env := newTestEnv(t, AvailabilityConfig{})
		env.hours.set(models.ModeOpen, 1, 2,
			models.SingleDay(1, "09:00", "12:30", true),
			models.SingleDay(2, "13:00", "22:10", true),
		)

		first, ok := env.availability.MinMaxWorkingHours(ctx, 1, 2)
		require.True(t, ok)
		assert.Equal(t, models.Envelope{Min: 9, Max: 23}, first)
		gets := env.hours.getCount()

		second, ok := env.availability.MinMaxWorkingHours(ctx, 1, 2)
		require.True(t, ok)
		assert.Equal(t, first, second)
		assert.Equal(t, gets, env.hours.getCount())

		// Кэш не видит изменений расписания до сброса
		env.hours.set(models.ModeOpen, 1, 2, models.SingleDay(1, "06:00", "00:00", true))
		stale, _ := env.availability.MinMaxWorkingHours(ctx, 1, 2)
		assert.Equal(t, first, stale)
	})

	t.Run("invalidate recomputes", func(t *testing.T) {
		env := newTestEnv(t, AvailabilityConfig{})
		env.hours.set(models.ModeOpen, 1, 2, models.SingleDay(1, "09:00", "17:00", true))

		before, ok := env.availability.MinMaxWorkingHours(ctx, 1, 2)
		require.True(t, ok)
		assert.Equal(t, models.Envelope{Min: 9, Max: 17}, before)

		env.hours.set(models.ModeOpen, 1, 2, models.SingleDay(1, "06:00", "00:00", true))
		require.NoError(t, env.availability.InvalidateWorker(ctx, 1, 2))

		after, ok := env.availability.MinMaxWorkingHours(ctx, 1, 2)
		require.True(t, ok)
		assert.Equal(t, models.Envelope{Min: 6, Max: 24}, after)
	})

	t.Run("absence is not cached", func(t *testing.T) {
		env := newTestEnv(t, AvailabilityConfig{})

		_, ok := env.availability.MinMaxWorkingHours(ctx, 1, 2)
		assert.False(t, ok)

		_, found, err := env.store.Get(ctx, envelopeKey(0, 1, 2))
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("keys are scoped by worker and location", func(t *testing.T) {
		env := newTestEnv(t, AvailabilityConfig{})
		env.hours.set(models.ModeOpen, 1, 2, models.SingleDay(1, "09:00", "17:00", true))
		env.hours.set(models.ModeOpen, 1, 3, models.SingleDay(1, "12:00", "20:00", true))

		a, _ := env.availability.MinMaxWorkingHours(ctx, 1, 2)
		b, _ := env.availability.MinMaxWorkingHours(ctx, 1, 3)
		assert.Equal(t, models.Envelope{Min: 9, Max: 17}, a)
		assert.Equal(t, models.Envelope{Min: 12, Max: 20}, b)
	})

	t.Run("concurrent readers agree", func(t *testing.T) {
		env := newTestEnv(t, AvailabilityConfig{})
		env.hours.set(models.ModeOpen, 1, 2, models.SingleDay(1, "09:00", "17:00", true))

		var wg sync.WaitGroup
		results := make([]models.Envelope, 16)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = env.availability.MinMaxWorkingHours(ctx, 1, 2)
			}(i)
		}
		wg.Wait()

		for _, result := range results {
			assert.Equal(t, models.Envelope{Min: 9, Max: 17}, result)
		}
	})

	t.Run("invalidate all starts a new generation", func(t *testing.T) {
		env := newTestEnv(t, AvailabilityConfig{})
		env.hours.set(models.ModeOpen, 1, 2, models.SingleDay(1, "09:00", "17:00", true))

		_, ok := env.envelopes.Get(ctx, 1, 2)
		require.True(t, ok)
		_, found, err := env.store.Get(ctx, envelopeKey(0, 1, 2))
		require.NoError(t, err)
		assert.True(t, found)

		env.hours.set(models.ModeOpen, 1, 2, models.SingleDay(1, "08:00", "17:00", true))
		require.NoError(t, env.envelopes.InvalidateAll(ctx))
		assert.Equal(t, int64(1), env.envelopes.generation(ctx))

		// Кэш расписаний не сброшен, поэтому часы берутся из него
		fresh, ok := env.envelopes.Get(ctx, 1, 2)
		require.True(t, ok)
		assert.Equal(t, models.Envelope{Min: 9, Max: 17}, fresh)

		require.NoError(t, env.resolver.Invalidate(ctx, 1, 2))
		require.NoError(t, env.envelopes.InvalidateAll(ctx))
		fresh, ok = env.envelopes.Get(ctx, 1, 2)
		require.True(t, ok)
		assert.Equal(t, models.Envelope{Min: 8, Max: 17}, fresh)
	})
}
