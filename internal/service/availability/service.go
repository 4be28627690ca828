package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
)

// Service движок расчета доступности
// Последовательность на запрос: резолвер конфигурации -> индексатор занятости ->
// обход дней месяца с генерацией слотов. Сервис не держит состояния между
// запросами: результаты иммутабельны, кэширование - забота вызывающего слоя
type Service struct {
	scheduleRepo    ScheduleRepository
	reservationRepo ReservationRepository
	blockRepo       BlockRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр движка доступности
func NewService(
	scheduleRepo ScheduleRepository,
	reservationRepo ReservationRepository,
	blockRepo BlockRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:    scheduleRepo,
		reservationRepo: reservationRepo,
		blockRepo:       blockRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// ComputeMonth рассчитывает доступность каждого дня месяца.
//
// Причины недоступности проверяются в фиксированном порядке:
// past -> not_working_day -> blocked -> no_slots. Порядок закреплен
// пользовательскими сообщениями: прошедший нерабочий день показывается
// как past, а не not_working_day
func (s *Service) ComputeMonth(ctx context.Context, barberID, serviceID int64, year int, month time.Month) (*domain.MonthAvailability, error) {
	started := time.Now()

	cfg, err := s.ResolveConfig(ctx, barberID, serviceID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	from, to := monthRange(year, month, now.Location())

	occupancy, err := s.IndexOccupancy(ctx, barberID, from, to)
	if err != nil {
		return nil, err
	}

	days := DaysInMonth(year, month)
	result := &domain.MonthAvailability{
		BarberID:    barberID,
		ServiceID:   serviceID,
		Year:        year,
		Month:       month,
		Days:        make([]domain.DayAvailability, 0, days),
		WorkingDays: cfg.WorkingDays,
	}

	for day := 1; day <= days; day++ {
		// Кооперативная отмена: устаревший запрос не должен досчитывать месяц
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: computation cancelled: %v", ErrInternal, err)
		}

		date := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
		result.Days = append(result.Days, s.computeDay(date, cfg, occupancy, now))
	}

	result.ProcessingTime = time.Since(started)

	s.logger.Info("ComputeMonth: barber=%d service=%d %d-%02d computed, %d/%d days available, took %s",
		barberID, serviceID, year, month, result.AvailableCount(), days, result.ProcessingTime)

	return result, nil
}

// computeDay классифицирует один день месяца
func (s *Service) computeDay(
	date time.Time,
	cfg *domain.ScheduleConfig,
	occupancy map[string][]domain.OccupiedInterval,
	now time.Time,
) domain.DayAvailability {
	day := domain.DayAvailability{
		Day:  date.Day(),
		Date: date,
	}

	if beforeDate(date, now) {
		day.Reason = domain.ReasonPast
		return day
	}

	if !cfg.IsWorkingDay(date.Weekday()) {
		day.Reason = domain.ReasonNotWorkingDay
		return day
	}

	occupied := occupancy[date.Format(domain.DateFormat)]
	for _, interval := range occupied {
		if interval.FullDay {
			day.Reason = domain.ReasonBlocked
			return day
		}
	}

	slots := GenerateSlots(cfg, occupied, s.minAllowedStart(date, now))
	if len(slots) == 0 {
		day.Reason = domain.ReasonNoSlots
		return day
	}

	day.Available = true
	day.SlotCount = len(slots)
	day.FirstSlot = slots[0].StartTime
	day.LastSlot = slots[len(slots)-1].StartTime

	return day
}

// minAllowedStart возвращает нижнюю границу начала записи для даты:
// 0 для будущих дат, now+lead time для сегодняшней
func (s *Service) minAllowedStart(date, now time.Time) int {
	if sameDate(date, now) {
		return minuteOfDay(now) + domain.SameDayLeadTimeMinutes
	}
	return 0
}

// DaySlots возвращает сетку кандидатов одного дня с флагами доступности
// Занятые и отсеянные по lead time кандидаты остаются в выдаче с Available=false.
// Для прошедшей даты, нерабочего дня и полнодневного блока сетка пуста
func (s *Service) DaySlots(ctx context.Context, barberID int64, date time.Time, durationMinutes int) ([]domain.DaySlot, error) {
	barber, err := s.scheduleRepo.GetBarberSchedule(ctx, barberID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBarberNotFound) {
			s.logger.Warn("DaySlots: barber id=%d not found or inactive", barberID)
			return nil, ErrNotFound
		}
		s.logger.Error("DaySlots: failed to get barber id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	workStart, workEnd, err := workingWindow(barber)
	if err != nil {
		return nil, err
	}

	cfg := &domain.ScheduleConfig{
		BarberID:         barberID,
		WorkingDays:      s.parseWorkingDays(barberID, barber.WorkingDaysRaw),
		WorkStartMinutes: workStart,
		WorkEndMinutes:   workEnd,
		DurationMinutes:  durationMinutes,
	}

	now := s.timeProvider.Now()

	if beforeDate(date, now) || !cfg.IsWorkingDay(date.Weekday()) {
		return []domain.DaySlot{}, nil
	}

	occupancy, err := s.IndexOccupancy(ctx, barberID, truncate(date), truncate(date))
	if err != nil {
		return nil, err
	}

	occupied := occupancy[date.Format(domain.DateFormat)]
	for _, interval := range occupied {
		if interval.FullDay {
			return []domain.DaySlot{}, nil
		}
	}

	// Вся сетка кандидатов рабочего окна, без lead-time фильтра
	allSlots := GenerateSlots(cfg, nil, 0)
	// Допустимые с учетом занятости и lead time
	validSlots := GenerateSlots(cfg, occupied, s.minAllowedStart(date, now))

	valid := make(map[int]bool, len(validSlots))
	for _, slot := range validSlots {
		valid[slot.StartMinute] = true
	}

	result := make([]domain.DaySlot, 0, len(allSlots))
	for _, slot := range allSlots {
		result = append(result, domain.DaySlot{
			StartTime: slot.StartTime,
			Available: valid[slot.StartMinute],
		})
	}

	return result, nil
}
