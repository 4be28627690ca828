package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// IntervalSource источник занятого интервала
type IntervalSource string

const (
	SourceReservation IntervalSource = "reservation"
	SourceBlock       IntervalSource = "block"
)

// OccupiedInterval занятый интервал [StartMinute, EndMinute) на конкретную дату
// FullDay-интервал закрывает день целиком независимо от границ
type OccupiedInterval struct {
	StartMinute int
	EndMinute   int
	FullDay     bool
	Source      IntervalSource
}

// UnavailableReason причина недоступности дня
type UnavailableReason string

const (
	ReasonPast          UnavailableReason = "past"
	ReasonNotWorkingDay UnavailableReason = "not_working_day"
	ReasonBlocked       UnavailableReason = "blocked"
	ReasonNoSlots       UnavailableReason = "no_slots"
)

// Slot кандидат начала записи на конкретную дату
type Slot struct {
	StartMinute int
	StartTime   types.TimeString
}

// DaySlot кандидат начала записи с флагом доступности
// Используется дневной выдачей: сетка кандидатов отдается целиком,
// занятые и отсеянные по lead time помечаются Available=false
type DaySlot struct {
	StartTime types.TimeString
	Available bool
}

// DayAvailability доступность одного календарного дня
// Либо Available=true с параметрами слотов, либо Available=false с причиной
type DayAvailability struct {
	Day       int       // день месяца (1..31)
	Date      time.Time // полная дата
	Available bool

	// Заполнены при Available=true
	SlotCount int
	FirstSlot types.TimeString
	LastSlot  types.TimeString

	// Заполнена при Available=false
	Reason UnavailableReason
}

// MonthAvailability результат расчета доступности на месяц
// Иммутабелен после создания: кэш раздает его без копирования
type MonthAvailability struct {
	BarberID  int64
	ServiceID int64
	Year      int
	Month     time.Month

	// Days упорядочен по дню месяца и покрывает каждый день 1..daysInMonth
	Days []DayAvailability

	WorkingDays    []time.Weekday
	ProcessingTime time.Duration
}

// AvailableCount возвращает количество доступных дней месяца
func (m *MonthAvailability) AvailableCount() int {
	count := 0
	for _, d := range m.Days {
		if d.Available {
			count++
		}
	}
	return count
}
