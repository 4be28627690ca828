package get_day_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

// UseCase для получения слотов барбера на конкретный день
type UseCase struct {
	engine AvailabilityEngine
	logger Logger
}

// NewUseCase создает usecase получения слотов на день
func NewUseCase(engine AvailabilityEngine, logger Logger) *UseCase {
	return &UseCase{
		engine: engine,
		logger: logger,
	}
}

// Execute возвращает сетку слотов барбера на день с пометкой доступности.
// Сетка считается напрямую, без кэша: занятость одного дня дешево читать,
// а точность для экрана выбора времени важнее
func (uc *UseCase) Execute(ctx context.Context, req *Request) ([]domain.DaySlot, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	slots, err := uc.engine.DaySlots(ctx, req.BarberID, req.Date, req.DurationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrNotFound):
			uc.logger.Warn("GetDaySlots: barber %d not found", req.BarberID)
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		default:
			uc.logger.Error("GetDaySlots: failed for barber %d on %s: %v",
				req.BarberID, req.Date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	return slots, nil
}
