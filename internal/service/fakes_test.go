package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"
	"worker-availability/internal/cache"
	"worker-availability/internal/models"
)

var errStoreDown = errors.New("store is down")

type fakeWorkers struct {
	workers map[uint]*models.Worker
	err     error
}

func (f *fakeWorkers) Create(_ context.Context, worker *models.Worker) error {
	if worker.ID == 0 {
		worker.ID = uint(len(f.workers) + 1)
	}
	f.workers[worker.ID] = worker
	return nil
}

func (f *fakeWorkers) GetByID(_ context.Context, id uint) (*models.Worker, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.workers[id], nil
}

func (f *fakeWorkers) GetAll(_ context.Context) ([]models.Worker, error) {
	var result []models.Worker
	for _, worker := range f.workers {
		result = append(result, *worker)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type fakeServices struct {
	services map[uint]*models.Service
	workers  map[uint][]models.Worker
	calls    int
}

func (f *fakeServices) Create(_ context.Context, service *models.Service) error {
	if service.ID == 0 {
		service.ID = uint(len(f.services) + 1)
	}
	f.services[service.ID] = service
	return nil
}

func (f *fakeServices) GetAll(_ context.Context) ([]models.Service, error) {
	var result []models.Service
	for id, service := range f.services {
		item := *service
		item.Workers = f.workers[id]
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeServices) GetByID(_ context.Context, id uint) (*models.Service, error) {
	f.calls++
	return f.services[id], nil
}

func (f *fakeServices) GetWorkers(_ context.Context, serviceID uint) ([]models.Worker, error) {
	f.calls++
	return f.workers[serviceID], nil
}

func (f *fakeServices) AssignWorker(_ context.Context, serviceID, workerID uint) error {
	f.workers[serviceID] = append(f.workers[serviceID], models.Worker{ID: workerID})
	return nil
}

type scopeKey struct {
	mode       models.ScheduleMode
	workerID   uint
	locationID uint
}

type fakeHours struct {
	mu    sync.Mutex
	hours map[scopeKey]*models.WorkingHours
	gets  int
	err   error
}

func (f *fakeHours) Get(_ context.Context, mode models.ScheduleMode, workerID, locationID uint) (*models.WorkingHours, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.err != nil {
		return nil, f.err
	}
	return f.hours[scopeKey{mode, workerID, locationID}], nil
}

func (f *fakeHours) Save(_ context.Context, hours *models.WorkingHours) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hours[scopeKey{hours.Mode, hours.WorkerID, hours.LocationID}] = hours
	return nil
}

func (f *fakeHours) Delete(_ context.Context, mode models.ScheduleMode, workerID, locationID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.hours, scopeKey{mode, workerID, locationID})
	return nil
}

func (f *fakeHours) getCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets
}

func (f *fakeHours) set(mode models.ScheduleMode, workerID, locationID uint, days ...models.DayHours) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hours[scopeKey{mode, workerID, locationID}] = &models.WorkingHours{
		WorkerID:   workerID,
		LocationID: locationID,
		Mode:       mode,
		Hours:      days,
	}
}

type fakeExceptions struct {
	exceptions map[scopeKey]*models.WorkerException
	err        error
}

func (f *fakeExceptions) Get(_ context.Context, mode models.ScheduleMode, workerID, locationID uint) (*models.WorkerException, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.exceptions[scopeKey{mode, workerID, locationID}], nil
}

func (f *fakeExceptions) Save(_ context.Context, exception *models.WorkerException) error {
	f.exceptions[scopeKey{exception.Mode, exception.WorkerID, exception.LocationID}] = exception
	return nil
}

func (f *fakeExceptions) Delete(_ context.Context, mode models.ScheduleMode, workerID, locationID uint) error {
	delete(f.exceptions, scopeKey{mode, workerID, locationID})
	return nil
}

func (f *fakeExceptions) set(workerID, locationID uint, days string) {
	f.exceptions[scopeKey{models.ModeClosed, workerID, locationID}] = &models.WorkerException{
		WorkerID:   workerID,
		LocationID: locationID,
		Mode:       models.ModeClosed,
		Days:       days,
	}
}

type testEnv struct {
	workers      *fakeWorkers
	services     *fakeServices
	hours        *fakeHours
	exceptions   *fakeExceptions
	store        *cache.MemoryStore
	resolver     *ScheduleResolver
	envelopes    *EnvelopeCache
	availability *AvailabilityService
}

func newTestEnv(t *testing.T, cfg AvailabilityConfig) *testEnv {
	t.Helper()

	env := &testEnv{
		workers:    &fakeWorkers{workers: map[uint]*models.Worker{}},
		services:   &fakeServices{services: map[uint]*models.Service{}, workers: map[uint][]models.Worker{}},
		hours:      &fakeHours{hours: map[scopeKey]*models.WorkingHours{}},
		exceptions: &fakeExceptions{exceptions: map[scopeKey]*models.WorkerException{}},
		store:      cache.NewMemoryStore(),
	}
	env.resolver = NewScheduleResolver(env.hours, env.store)
	env.envelopes = NewEnvelopeCache(env.store, env.resolver)
	env.availability = NewAvailabilityService(env.workers, env.services, env.exceptions, env.resolver, env.envelopes, cfg)
	return env
}

// addWorker регистрирует сотрудника и привязывает его к услуге
func (e *testEnv) addWorker(serviceID, workerID uint) {
	e.workers.workers[workerID] = &models.Worker{ID: workerID, Name: "worker"}
	e.services.workers[serviceID] = append(e.services.workers[serviceID], models.Worker{ID: workerID})
}

// monday - 2 марта 2026, понедельник
func monday(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func segment(start, end string) models.DaySegment {
	return models.DaySegment{Start: start, End: end, Active: true}
}
