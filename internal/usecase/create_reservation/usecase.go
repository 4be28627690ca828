package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/notifservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

// UseCase use case для создания записи к барберу
type UseCase struct {
	engine          AvailabilityEngine
	scheduleRepo    ScheduleRepository
	reservationRepo ReservationRepository
	cache           Cache
	notifClient     NotifServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	engine AvailabilityEngine,
	scheduleRepository ScheduleRepository,
	reservationRepository ReservationRepository,
	cache Cache,
	notifClient NotifServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		engine:          engine,
		scheduleRepo:    scheduleRepository,
		reservationRepo: reservationRepository,
		cache:           cache,
		notifClient:     notifClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// занятость дня перечитывается внутри транзакции с блокировкой строк
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, barber=%d, service=%d, date=%s, time=%s",
		req.UserID, req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Резолвим конфигурацию расписания: барбер активен, услуга активна
	// и входит в его набор
	cfg, err := uc.engine.ResolveConfig(ctx, req.BarberID, req.ServiceID)
	if err != nil {
		if errors.Is(err, availability.ErrNotFound) {
			uc.logger.Warn("CreateReservation: barber=%d / service=%d not found: %v",
				req.BarberID, req.ServiceID, err)
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		uc.logger.Error("CreateReservation: failed to resolve schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve schedule config: %v", ErrInternal, err)
	}

	// 4. Получаем услугу для денормализации названия и цены
	service, err := uc.scheduleRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: service id=%d", ErrNotFound, req.ServiceID)
		}
		uc.logger.Error("CreateReservation: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 6. Проверяем рабочий день барбера
	if !cfg.IsWorkingDay(req.Date.Weekday()) {
		uc.logger.Warn("CreateReservation: barber=%d does not work on %s",
			req.BarberID, req.Date.Weekday())
		return nil, ErrDayNotWorking
	}

	startMinute, err := req.StartTime.MinuteOfDay()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	endMinute := startMinute + cfg.DurationMinutes

	// 7. Проверяем рабочее окно и выравнивание по сетке слотов
	if err := validateTimeWindow(cfg, startMinute); err != nil {
		uc.logger.Warn("CreateReservation: time window validation failed: %v", err)
		return nil, err
	}

	// 8. Проверяем минимальный запас времени для записи на сегодня
	if err := validateLeadTime(req.Date, now, startMinute); err != nil {
		uc.logger.Warn("CreateReservation: lead time validation failed: %v", err)
		return nil, err
	}

	endTime, err := req.StartTime.AddMinutes(cfg.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to calculate end time: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 9. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Перечитываем занятость дня внутри транзакции
		// Выборка записей одного дня в транзакции идет с FOR UPDATE
		occupancy, err := uc.engine.IndexOccupancy(txCtx, req.BarberID, req.Date, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to index occupancy: %v", err)
			return fmt.Errorf("%w: failed to index occupancy: %v", ErrInternal, err)
		}

		occupied := occupancy[req.Date.Format(domain.DateFormat)]

		// 9.2. Полнодневная блокировка закрывает день целиком
		for _, interval := range occupied {
			if interval.FullDay {
				uc.logger.Warn("CreateReservation: day %s is fully blocked for barber=%d",
					req.Date.Format(domain.DateFormat), req.BarberID)
				return ErrDayBlocked
			}
		}

		// 9.3. Проверяем пересечение с существующими записями и блокировками
		if hasOverlap(occupied, startMinute, endMinute) {
			uc.logger.Warn("CreateReservation: slot %s-%s overlaps existing occupancy for barber=%d",
				req.StartTime, endTime, req.BarberID)
			return ErrSlotNotAvailable
		}

		// 9.4. Создаем запись с денормализацией данных услуги
		reservation := &domain.Reservation{
			UserID:       req.UserID,
			BarberID:     req.BarberID,
			ServiceID:    req.ServiceID,
			Date:         req.Date,
			StartTime:    req.StartTime,
			EndTime:      endTime,
			Status:       domain.StatusPending,
			ServiceName:  service.Name,
			ServicePrice: service.Price,
			Notes:        req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			// Exclusion constraint в БД - последний рубеж против гонки
			if errors.Is(err, reservationRepo.ErrOverlap) {
				uc.logger.Warn("CreateReservation: overlap constraint rejected slot %s-%s for barber=%d",
					req.StartTime, endTime, req.BarberID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 10. Инвалидируем кэш доступности барбера: занятость изменилась
	uc.cache.InvalidateBarber(req.BarberID)

	// 11. Отправляем уведомление с graceful degradation
	uc.notifyCreated(ctx, result)

	// Конвертируем в response
	return &Response{
		ID:           result.ID,
		UserID:       result.UserID,
		BarberID:     result.BarberID,
		ServiceID:    result.ServiceID,
		Date:         result.Date,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// notifyCreated отправляет событие о создании записи
// Недоступность сервиса уведомлений не откатывает созданную запись
func (uc *UseCase) notifyCreated(ctx context.Context, res *domain.Reservation) {
	barberName := ""
	if barber, err := uc.scheduleRepo.GetBarberSchedule(ctx, res.BarberID); err == nil {
		barberName = barber.Name
	}

	event := &notifservice.ReservationEvent{
		Type:          notifservice.EventTypeCreated,
		ReservationID: res.ID,
		UserID:        res.UserID,
		BarberID:      res.BarberID,
		BarberName:    barberName,
		ServiceName:   res.ServiceName,
		Date:          res.Date.Format(domain.DateFormat),
		StartTime:     res.StartTime.String(),
	}

	if err := uc.notifClient.SendReservationEventWithGracefulDegradation(ctx, event); err != nil {
		uc.logger.Warn("CreateReservation: notification degraded for reservation id=%d: %v", res.ID, err)
	}
}
