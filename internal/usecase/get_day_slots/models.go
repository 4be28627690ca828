package get_day_slots

import "time"

// Request модель запроса слотов на день
type Request struct {
	BarberID        int64     // ID барбера
	Date            time.Time // Дата, на которую нужны слоты
	DurationMinutes int       // Длительность услуги в минутах
}
