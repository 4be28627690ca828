package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
)

// ResolveConfig собирает нормализованную конфигурацию расчета доступности:
// рабочее окно барбера в минутах дня, нормализованные рабочие дни и
// длительность услуги. Дальше конвейера неразобранные данные не проходят
func (s *Service) ResolveConfig(ctx context.Context, barberID, serviceID int64) (*domain.ScheduleConfig, error) {
	barber, err := s.scheduleRepo.GetBarberSchedule(ctx, barberID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBarberNotFound) {
			s.logger.Warn("ResolveConfig: barber id=%d not found or inactive", barberID)
			return nil, ErrNotFound
		}
		s.logger.Error("ResolveConfig: failed to get barber id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	service, err := s.scheduleRepo.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrServiceNotFound) {
			s.logger.Warn("ResolveConfig: service id=%d not found or inactive", serviceID)
			return nil, ErrNotFound
		}
		s.logger.Error("ResolveConfig: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	offers, err := s.scheduleRepo.BarberOffersService(ctx, barberID, serviceID)
	if err != nil {
		s.logger.Error("ResolveConfig: failed to check barber=%d service=%d link: %v", barberID, serviceID, err)
		return nil, fmt.Errorf("%w: failed to check barber services: %v", ErrInternal, err)
	}
	if !offers {
		s.logger.Warn("ResolveConfig: barber id=%d does not offer service id=%d", barberID, serviceID)
		return nil, ErrNotFound
	}

	workStart, workEnd, err := workingWindow(barber)
	if err != nil {
		s.logger.Error("ResolveConfig: barber id=%d has invalid working hours %s-%s",
			barberID, barber.StartTime, barber.EndTime)
		return nil, err
	}

	workingDays := s.parseWorkingDays(barberID, barber.WorkingDaysRaw)

	return &domain.ScheduleConfig{
		BarberID:         barberID,
		ServiceID:        serviceID,
		WorkingDays:      workingDays,
		WorkStartMinutes: workStart,
		WorkEndMinutes:   workEnd,
		DurationMinutes:  service.DurationMinutes,
	}, nil
}

// workingWindow переводит рабочее окно барбера в минуты дня
// Инвариант start < end проверяется здесь, ниже по конвейеру он считается данным
func workingWindow(barber *domain.BarberSchedule) (int, int, error) {
	start, err := barber.StartTime.MinuteOfDay()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: hora_inicio: %v", ErrInvalidSchedule, err)
	}
	end, err := barber.EndTime.MinuteOfDay()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: hora_fin: %v", ErrInvalidSchedule, err)
	}
	if start >= end {
		return 0, 0, fmt.Errorf("%w: start %s >= end %s", ErrInvalidSchedule, barber.StartTime, barber.EndTime)
	}
	return start, end, nil
}

// parseWorkingDays нормализует dias_trabajo в список time.Weekday
// Формат - JSON-массив испанских названий дней ("[\"lunes\",\"martes\"]"),
// исторические записи встречаются и просто через запятую.
// Неразбираемое значение деградирует в пустой список: все дни месяца уйдут
// с причиной not_working_day вместо падения запроса
func (s *Service) parseWorkingDays(barberID int64, raw string) []time.Weekday {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		s.logger.Warn("parseWorkingDays: barber id=%d has empty dias_trabajo", barberID)
		return []time.Weekday{}
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		names = strings.Split(raw, ",")
	}

	seen := make(map[time.Weekday]bool)
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		wd, ok := domain.ParseSpanishWeekday(name)
		if !ok {
			s.logger.Warn("parseWorkingDays: barber id=%d has unknown weekday %q, skipping", barberID, name)
			continue
		}
		if !seen[wd] {
			seen[wd] = true
			days = append(days, wd)
		}
	}

	if len(days) == 0 {
		s.logger.Warn("parseWorkingDays: barber id=%d dias_trabajo %q resolved to empty set", barberID, raw)
	}

	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	return days
}
