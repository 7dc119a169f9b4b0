package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
	"worker-availability/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExceptionServiceLoadFromJSON(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, AvailabilityConfig{})
	exceptions := NewExceptionService(env.exceptions, time.UTC)

	path := filepath.Join(t.TempDir(), "calendar.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"year": 2026, "months": [{"month": 3, "days": "2,8+"}]}`), 0o600))

	count, err := exceptions.LoadFromJSON(ctx, path, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	days, err := exceptions.GetHolidays(ctx, models.GlobalWorkerID, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-02", "2026-03-08"}, days)

	// Загруженный календарь действует для сотрудников без своей записи
	assert.True(t, env.availability.IsHoliday(ctx, monday(10, 0), monday(11, 0), 0, 1))

	// Повторная загрузка не дублирует даты
	_, err = exceptions.LoadFromJSON(ctx, path, 1)
	require.NoError(t, err)
	days, err = exceptions.GetHolidays(ctx, models.GlobalWorkerID, 1)
	require.NoError(t, err)
	assert.Len(t, days, 2)

	_, err = exceptions.LoadFromJSON(ctx, filepath.Join(t.TempDir(), "missing.json"), 1)
	assert.Error(t, err)
}

func TestExceptionServiceAddHoliday(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, AvailabilityConfig{})
	env.workers.workers[4] = &models.Worker{ID: 4}
	exceptions := NewExceptionService(env.exceptions, time.FixedZone("UTC+3", 3*60*60))

	// 22:00 UTC 1 марта - уже 2 марта в UTC+3
	require.NoError(t, exceptions.AddHoliday(ctx, 4, 1, time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)))

	days, err := exceptions.GetHolidays(ctx, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-02"}, days)
	assert.True(t, env.availability.IsHoliday(ctx, monday(10, 0), monday(11, 0), 4, 1))

	none, err := exceptions.GetHolidays(ctx, 5, 1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestExceptionServiceAddAbsence(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, AvailabilityConfig{})
	env.workers.workers[4] = &models.Worker{ID: 4}
	exceptions := NewExceptionService(env.exceptions, time.UTC)

	count, err := exceptions.AddAbsence(ctx, 4, 1, time.Date(2026, 2, 27, 15, 0, 0, 0, time.UTC), time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	days, err := exceptions.GetHolidays(ctx, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}, days)
	assert.True(t, env.availability.IsHoliday(ctx, monday(10, 0), monday(11, 0), 4, 1))

	_, err = exceptions.AddAbsence(ctx, 4, 1, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}
