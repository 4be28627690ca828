package domain

// Slot generation parameters
const (
	// SlotStepMinutes шаг генерации кандидатов начала записи
	SlotStepMinutes = 15

	// SameDayLeadTimeMinutes минимальное время до начала записи при бронировании "на сегодня"
	SameDayLeadTimeMinutes = 120

	// MinutesPerDay количество минут в сутках
	MinutesPerDay = 24 * 60
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxNotesLength            = 500
	MaxCancelReasonLength     = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Маркеры полнодневного блока в колонках hora_inicio/hora_fin
// Блок без времени, либо с 00:00-23:59, закрывает день целиком
const (
	FullDayBlockStart = "00:00"
	FullDayBlockEnd   = "23:59"
)
