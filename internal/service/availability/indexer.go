package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// IndexOccupancy строит карту занятости барбера по датам периода [from, to]
// Ключ - дата в формате YYYY-MM-DD, значение - занятые интервалы этой даты.
//
// Карта строится из одного снимка данных: записи и блокировки читаются один раз
// на запрос, чтобы дни одного ответа не считались по разным версиям данных.
// Относительно конкурентных записей результат остается совещательным -
// авторитетная проверка пересечений живет на пути создания записи
func (s *Service) IndexOccupancy(ctx context.Context, barberID int64, from, to time.Time) (map[string][]domain.OccupiedInterval, error) {
	filter := domain.ReservationRangeFilter{
		BarberID:  barberID,
		StartDate: &from,
		EndDate:   &to,
	}

	reservations, err := s.reservationRepo.GetByBarberAndRange(ctx, filter)
	if err != nil {
		s.logger.Error("IndexOccupancy: failed to get reservations for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	blocks, err := s.blockRepo.GetByBarberOverlappingRange(ctx, barberID, from, to)
	if err != nil {
		s.logger.Error("IndexOccupancy: failed to get blocks for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	index := make(map[string][]domain.OccupiedInterval)

	for _, res := range reservations {
		interval, err := reservationInterval(res)
		if err != nil {
			// Кривое время в записи не должно молча превращаться в свободный слот
			s.logger.Error("IndexOccupancy: reservation id=%d has malformed time: %v", res.ID, err)
			return nil, fmt.Errorf("%w: reservation id=%d: %v", ErrInternal, res.ID, err)
		}
		key := res.Date.Format(domain.DateFormat)
		index[key] = append(index[key], interval)
	}

	for _, b := range blocks {
		intervals, err := blockIntervals(b, from, to)
		if err != nil {
			s.logger.Error("IndexOccupancy: block id=%d has malformed time: %v", b.ID, err)
			return nil, fmt.Errorf("%w: block id=%d: %v", ErrInternal, b.ID, err)
		}
		for key, interval := range intervals {
			index[key] = append(index[key], interval)
		}
	}

	return index, nil
}

// reservationInterval переводит hora_inicio/hora_fin записи в занятый интервал
func reservationInterval(res *domain.Reservation) (domain.OccupiedInterval, error) {
	start, err := res.StartTime.MinuteOfDay()
	if err != nil {
		return domain.OccupiedInterval{}, fmt.Errorf("hora_inicio %q: %v", res.StartTime, err)
	}
	end, err := res.EndTime.MinuteOfDay()
	if err != nil {
		return domain.OccupiedInterval{}, fmt.Errorf("hora_fin %q: %v", res.EndTime, err)
	}
	if start >= end {
		return domain.OccupiedInterval{}, fmt.Errorf("interval %s-%s is empty", res.StartTime, res.EndTime)
	}
	return domain.OccupiedInterval{
		StartMinute: start,
		EndMinute:   end,
		Source:      domain.SourceReservation,
	}, nil
}

// blockIntervals разворачивает блок в занятые интервалы по датам
// Блок, покрывающий несколько дат, дает по интервалу на каждую покрытую дату
// периода (обе границы включительно)
func blockIntervals(b *domain.Block, from, to time.Time) (map[string]domain.OccupiedInterval, error) {
	interval := domain.OccupiedInterval{
		StartMinute: 0,
		EndMinute:   domain.MinutesPerDay,
		FullDay:     true,
		Source:      domain.SourceBlock,
	}

	if !b.IsFullDay() {
		start, err := b.StartTime.MinuteOfDay()
		if err != nil {
			return nil, fmt.Errorf("hora_inicio %q: %v", *b.StartTime, err)
		}
		end := domain.MinutesPerDay
		if b.EndTime != nil && *b.EndTime != "" {
			end, err = b.EndTime.MinuteOfDay()
			if err != nil {
				return nil, fmt.Errorf("hora_fin %q: %v", *b.EndTime, err)
			}
		}
		if start >= end {
			return nil, fmt.Errorf("interval %s is empty", *b.StartTime)
		}
		interval = domain.OccupiedInterval{
			StartMinute: start,
			EndMinute:   end,
			Source:      domain.SourceBlock,
		}
	}

	first := laterDate(truncate(b.StartDate), truncate(from))
	last := earlierDate(truncate(b.EndDate), truncate(to))

	result := make(map[string]domain.OccupiedInterval)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		result[d.Format(domain.DateFormat)] = interval
	}

	return result, nil
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func laterDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
