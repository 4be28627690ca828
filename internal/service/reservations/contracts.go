package reservations

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/notifservice"
)

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// Cache интерфейс кэша доступности для инвалидации после отмены
type Cache interface {
	InvalidateBarber(barberID int64) int
}

// NotifServiceClient интерфейс клиента сервиса уведомлений
type NotifServiceClient interface {
	SendReservationEventWithGracefulDegradation(ctx context.Context, event *notifservice.ReservationEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
