package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/notifservice"
)

// AvailabilityEngine интерфейс движка доступности
// ResolveConfig проверяет барбера и услугу, IndexOccupancy читает занятость
// внутри транзакции с блокировкой строк
type AvailabilityEngine interface {
	ResolveConfig(ctx context.Context, barberID, serviceID int64) (*domain.ScheduleConfig, error)
	IndexOccupancy(ctx context.Context, barberID int64, from, to time.Time) (map[string][]domain.OccupiedInterval, error)
}

// ScheduleRepository интерфейс репозитория расписаний (для денормализации)
type ScheduleRepository interface {
	GetBarberSchedule(ctx context.Context, barberID int64) (*domain.BarberSchedule, error)
	GetService(ctx context.Context, serviceID int64) (*domain.BarberService, error)
}

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// Cache интерфейс кэша доступности для инвалидации после записи
type Cache interface {
	InvalidateBarber(barberID int64) int
}

// NotifServiceClient интерфейс клиента сервиса уведомлений
type NotifServiceClient interface {
	SendReservationEventWithGracefulDegradation(ctx context.Context, event *notifservice.ReservationEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
