package service

import (
	"context"
	"fmt"
	"strings"
	"worker-availability/internal/models"
	"worker-availability/internal/repository"

	"github.com/sirupsen/logrus"
)

// StaffService управляет сотрудниками, услугами и их связями
type StaffService struct {
	workers  repository.WorkerRepository
	services repository.ServiceRepository
	logger   *logrus.Logger
}

func NewStaffService(workers repository.WorkerRepository, services repository.ServiceRepository) *StaffService {
	return &StaffService{
		workers:  workers,
		services: services,
		logger:   logrus.StandardLogger(),
	}
}

// CreateWorker регистрирует сотрудника. chatID = 0, если у сотрудника нет Telegram
func (s *StaffService) CreateWorker(ctx context.Context, name string, chatID int64) (*models.Worker, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("имя не может быть пустым")
	}

	worker := &models.Worker{
		Name:   name,
		ChatID: chatID,
	}

	if err := s.workers.Create(ctx, worker); err != nil {
		return nil, fmt.Errorf("ошибка создания сотрудника: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"worker_id": worker.ID,
		"chat_id":   chatID,
	}).Info("Worker created")

	return worker, nil
}

// CreateService создает услугу. capacity = 0 - без ограничения вместимости
func (s *StaffService) CreateService(ctx context.Context, name string, capacity, duration int) (*models.Service, error) {
	service := &models.Service{
		Name:     strings.TrimSpace(name),
		Capacity: capacity,
		Duration: duration,
	}

	if err := s.services.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("ошибка создания услуги: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"service_id": service.ID,
		"capacity":   capacity,
	}).Info("Service created")

	return service, nil
}

// AssignWorker разрешает сотруднику оказывать услугу
func (s *StaffService) AssignWorker(ctx context.Context, serviceID, workerID uint) error {
	service, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		return fmt.Errorf("ошибка получения услуги: %w", err)
	}
	if service == nil {
		return fmt.Errorf("услуга %d не найдена", serviceID)
	}

	worker, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		return fmt.Errorf("ошибка получения сотрудника: %w", err)
	}
	if worker == nil {
		return fmt.Errorf("сотрудник %d не найден", workerID)
	}

	if err := s.services.AssignWorker(ctx, serviceID, workerID); err != nil {
		return fmt.Errorf("ошибка привязки сотрудника: %w", err)
	}

	return nil
}

// FormatAllWorkers форматирует список всех сотрудников
func (s *StaffService) FormatAllWorkers(ctx context.Context) (string, error) {
	workers, err := s.workers.GetAll(ctx)
	if err != nil {
		return "", err
	}

	if len(workers) == 0 {
		return "📭 Список сотрудников пуст.", nil
	}

	var lines []string
	lines = append(lines, "📋 Все сотрудники:")
	lines = append(lines, "")

	for _, worker := range workers {
		info := fmt.Sprintf("%d. 👤 %s", worker.ID, worker.Name)
		if worker.ChatID != 0 {
			info += fmt.Sprintf(" - chat ID: %d", worker.ChatID)
		}
		lines = append(lines, info)
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("📊 Всего сотрудников: %d", len(workers)))

	return strings.Join(lines, "\n"), nil
}

// FormatAllServices форматирует список услуг с их сотрудниками
func (s *StaffService) FormatAllServices(ctx context.Context) (string, error) {
	services, err := s.services.GetAll(ctx)
	if err != nil {
		return "", err
	}

	if len(services) == 0 {
		return "📭 Список услуг пуст.", nil
	}

	var lines []string
	lines = append(lines, "📋 Все услуги:")
	lines = append(lines, "")

	for _, service := range services {
		capacity := "без ограничений"
		if !service.IsUnlimited() {
			capacity = fmt.Sprintf("%d", service.Capacity)
		}
		lines = append(lines, fmt.Sprintf("%d. %s (%d мин.) - вместимость: %s",
			service.ID, service.Name, service.Duration, capacity))

		if len(service.Workers) == 0 {
			lines = append(lines, "   сотрудники не назначены")
			continue
		}

		ids := make([]string, 0, len(service.Workers))
		for _, worker := range service.Workers {
			ids = append(ids, fmt.Sprintf("%d", worker.ID))
		}
		lines = append(lines, "   сотрудники: "+strings.Join(ids, ", "))
	}

	return strings.Join(lines, "\n"), nil
}
