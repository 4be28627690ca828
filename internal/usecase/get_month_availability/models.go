package get_month_availability

import "time"

// Request модель запроса доступности на месяц
type Request struct {
	BarberID  int64      // ID барбера
	ServiceID int64      // ID услуги (определяет длительность слота)
	Year      int        // Год, например 2026
	Month     time.Month // Месяц 1..12
}
