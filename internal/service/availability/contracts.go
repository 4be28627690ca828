package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний барберов и услуг
type ScheduleRepository interface {
	GetBarberSchedule(ctx context.Context, barberID int64) (*domain.BarberSchedule, error)
	GetService(ctx context.Context, serviceID int64) (*domain.BarberService, error)
	BarberOffersService(ctx context.Context, barberID, serviceID int64) (bool, error)
}

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	GetByBarberAndRange(ctx context.Context, filter domain.ReservationRangeFilter) ([]*domain.Reservation, error)
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	GetByBarberOverlappingRange(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.Block, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
