package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано и парсится
	if req.StartTime == "" {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if _, err := req.StartTime.MinuteOfDay(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateTimeWindow проверяет, что запись выровнена по сетке слотов
// и целиком помещается в рабочее окно барбера
func validateTimeWindow(cfg *domain.ScheduleConfig, startMinute int) error {
	if startMinute < cfg.WorkStartMinutes || startMinute+cfg.DurationMinutes > cfg.WorkEndMinutes {
		return ErrOutsideWorkingHours
	}

	if (startMinute-cfg.WorkStartMinutes)%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: startTime must be aligned to %d-minute grid from %02d:%02d",
			ErrInvalidTimeSlot, domain.SlotStepMinutes, cfg.WorkStartMinutes/60, cfg.WorkStartMinutes%60)
	}

	return nil
}

// validateLeadTime проверяет минимальный запас времени для записи на сегодня
func validateLeadTime(date, now time.Time, startMinute int) error {
	if !isSameDay(date, now) {
		return nil
	}

	minAllowed := now.Hour()*60 + now.Minute() + domain.SameDayLeadTimeMinutes
	if startMinute < minAllowed {
		return fmt.Errorf("%w: must book at least %d minutes in advance",
			ErrTooLateToBook, domain.SameDayLeadTimeMinutes)
	}

	return nil
}

// hasOverlap проверяет пересечение интервала [startMinute, endMinute)
// с занятыми интервалами дня
func hasOverlap(occupied []domain.OccupiedInterval, startMinute, endMinute int) bool {
	for _, interval := range occupied {
		if interval.StartMinute < endMinute && interval.EndMinute > startMinute {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
