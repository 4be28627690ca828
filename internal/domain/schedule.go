package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BarberSchedule расписание барбера, как оно хранится в БД
// dias_trabajo - JSON-массив испанских названий дней недели в нижнем регистре
type BarberSchedule struct {
	BarberID       int64
	Name           string
	Active         bool
	WorkingDaysRaw string // сырое значение dias_trabajo, парсится резолвером
	StartTime      types.TimeString
	EndTime        types.TimeString
}

// BarberService услуга барбершопа
type BarberService struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	Active          bool
}

// ScheduleConfig разрешенная конфигурация для расчета доступности
// Собирается резолвером из расписания барбера и длительности услуги;
// дальше по конвейеру проходит только в этом нормализованном виде
type ScheduleConfig struct {
	BarberID         int64
	ServiceID        int64
	WorkingDays      []time.Weekday // нормализованные рабочие дни (Sun=0..Sat=6)
	WorkStartMinutes int            // начало рабочего окна, минута дня
	WorkEndMinutes   int            // конец рабочего окна, минута дня
	DurationMinutes  int            // длительность услуги
}

// IsWorkingDay returns true if the weekday is in the barber's working days
func (c *ScheduleConfig) IsWorkingDay(wd time.Weekday) bool {
	for _, d := range c.WorkingDays {
		if d == wd {
			return true
		}
	}
	return false
}

// spanishWeekdays испанские названия дней недели -> time.Weekday
// Принимаем варианты с диакритикой и без ("miércoles"/"miercoles")
var spanishWeekdays = map[string]time.Weekday{
	"domingo":   time.Sunday,
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miércoles": time.Wednesday,
	"miercoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sábado":    time.Saturday,
	"sabado":    time.Saturday,
}

// weekdaySpanishNames канонические испанские названия для ответов API
var weekdaySpanishNames = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
}

// ParseSpanishWeekday нормализует испанское название дня недели
// Возвращает false, если название неизвестно
func ParseSpanishWeekday(name string) (time.Weekday, bool) {
	wd, ok := spanishWeekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// WeekdaySpanishName возвращает каноническое испанское название дня недели
func WeekdaySpanishName(wd time.Weekday) string {
	return weekdaySpanishNames[wd]
}
