package notifservice

// Типы событий по записи
const (
	EventTypeCreated   = "created"
	EventTypeCancelled = "cancelled"
)

// ReservationEvent событие по записи, отправляемое в сервис уведомлений
// Сервис уведомлений сам решает, какие каналы задействовать (email/WhatsApp)
type ReservationEvent struct {
	Type          string  `json:"type"` // "created" | "cancelled"
	ReservationID int64   `json:"reservation_id"`
	UserID        int64   `json:"user_id"`
	BarberID      int64   `json:"barber_id"`
	BarberName    string  `json:"barber_name,omitempty"`
	ServiceName   string  `json:"service_name"`
	Date          string  `json:"date"`       // YYYY-MM-DD
	StartTime     string  `json:"start_time"` // HH:MM
	Reason        *string `json:"reason,omitempty"`
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
