package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getDaySlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	BarberID        int64     `json:"barberId"`
	Date            string    `json:"date"`
	DurationMinutes int       `json:"durationMinutes"`
	Slots           []DaySlot `json:"slots"`
}

// DaySlot слот сетки дня с флагом доступности
type DaySlot struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP response
func FromUseCaseResponse(barberID int64, date time.Time, durationMinutes int, slots []domain.DaySlot) *DaySlotsResponse {
	resp := &DaySlotsResponse{
		BarberID:        barberID,
		Date:            date.Format(domain.DateFormat),
		DurationMinutes: durationMinutes,
		Slots:           make([]DaySlot, 0, len(slots)),
	}

	for _, slot := range slots {
		resp.Slots = append(resp.Slots, DaySlot{
			StartTime: slot.StartTime.String(),
			Available: slot.Available,
		})
	}

	return resp
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(barberID int64, dateStr string, durationMinutes int) (*getDaySlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDaySlots.Request{
		BarberID:        barberID,
		Date:            date,
		DurationMinutes: durationMinutes,
	}, nil
}
