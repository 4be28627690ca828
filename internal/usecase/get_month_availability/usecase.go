package get_month_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	cache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

// UseCase для получения доступности барбера на месяц
type UseCase struct {
	engine  AvailabilityEngine
	cache   Cache
	metrics Metrics
	logger  Logger
}

// NewUseCase создает usecase получения доступности на месяц; metrics может быть nil
func NewUseCase(engine AvailabilityEngine, monthCache Cache, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		engine:  engine,
		cache:   monthCache,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute возвращает доступность барбера на месяц для услуги.
// Результат берется из кэша; при промахе месяц считается один раз,
// конкурентные запросы того же ключа ждут общий расчет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.MonthAvailability, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	key := cache.Key{
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Year:      req.Year,
		Month:     req.Month,
	}

	result, err := uc.cache.GetOrCompute(ctx, key, func(ctx context.Context) (*domain.MonthAvailability, error) {
		month, err := uc.engine.ComputeMonth(ctx, req.BarberID, req.ServiceID, req.Year, req.Month)
		if err != nil {
			return nil, err
		}

		if uc.metrics != nil {
			uc.metrics.ObserveAvailabilityCompute(month.ProcessingTime)
		}

		uc.logger.Info("GetMonthAvailability: computed %s for barber %d, service %d in %s",
			key.String(), req.BarberID, req.ServiceID, month.ProcessingTime)

		return month, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrNotFound):
			uc.logger.Warn("GetMonthAvailability: not found: barber %d, service %d", req.BarberID, req.ServiceID)
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		default:
			uc.logger.Error("GetMonthAvailability: compute failed for barber %d, service %d: %v",
				req.BarberID, req.ServiceID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	return result, nil
}
