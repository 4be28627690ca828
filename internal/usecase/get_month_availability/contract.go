package get_month_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	cache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/availability"
)

// AvailabilityEngine интерфейс движка расчета доступности
type AvailabilityEngine interface {
	ComputeMonth(ctx context.Context, barberID, serviceID int64, year int, month time.Month) (*domain.MonthAvailability, error)
}

// Cache интерфейс кэша месяцев доступности
type Cache interface {
	GetOrCompute(ctx context.Context, key cache.Key, compute cache.ComputeFunc) (*domain.MonthAvailability, error)
}

// Metrics интерфейс метрик расчета (опционально)
type Metrics interface {
	ObserveAvailabilityCompute(duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
