package get_day_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// AvailabilityEngine интерфейс движка расчета доступности
type AvailabilityEngine interface {
	DaySlots(ctx context.Context, barberID int64, date time.Time, durationMinutes int) ([]domain.DaySlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
