package get_month_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getMonthAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_month_availability"
)

// MonthAvailabilityResponse HTTP response model
type MonthAvailabilityResponse struct {
	BarberID        int64            `json:"barberId"`
	ServiceID       int64            `json:"serviceId"`
	Year            int              `json:"year"`
	Month           int              `json:"month"`
	AvailableDays   []AvailableDay   `json:"availableDays"`
	UnavailableDays []UnavailableDay `json:"unavailableDays"`
	TotalDays       int              `json:"totalDays"`
	WorkingDays     []string         `json:"workingDays"`
	ProcessingTime  string           `json:"processingTime"`
}

// AvailableDay день с хотя бы одним свободным слотом
type AvailableDay struct {
	Day        int    `json:"day"`
	Date       string `json:"date"`
	SlotsCount int    `json:"slotsCount"`
	FirstSlot  string `json:"firstSlot"`
	LastSlot   string `json:"lastSlot"`
}

// UnavailableDay день без свободных слотов с причиной
type UnavailableDay struct {
	Day    int    `json:"day"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP response
func FromUseCaseResponse(month *domain.MonthAvailability) *MonthAvailabilityResponse {
	resp := &MonthAvailabilityResponse{
		BarberID:        month.BarberID,
		ServiceID:       month.ServiceID,
		Year:            month.Year,
		Month:           int(month.Month),
		AvailableDays:   make([]AvailableDay, 0, len(month.Days)),
		UnavailableDays: make([]UnavailableDay, 0),
		TotalDays:       len(month.Days),
		WorkingDays:     make([]string, 0, len(month.WorkingDays)),
		ProcessingTime:  month.ProcessingTime.String(),
	}

	for _, day := range month.Days {
		if day.Available {
			resp.AvailableDays = append(resp.AvailableDays, AvailableDay{
				Day:        day.Day,
				Date:       day.Date.Format(domain.DateFormat),
				SlotsCount: day.SlotCount,
				FirstSlot:  day.FirstSlot.String(),
				LastSlot:   day.LastSlot.String(),
			})
			continue
		}

		resp.UnavailableDays = append(resp.UnavailableDays, UnavailableDay{
			Day:    day.Day,
			Date:   day.Date.Format(domain.DateFormat),
			Reason: string(day.Reason),
		})
	}

	for _, weekday := range month.WorkingDays {
		resp.WorkingDays = append(resp.WorkingDays, domain.WeekdaySpanishName(weekday))
	}

	return resp
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(barberID, serviceID int64, year, month int) *getMonthAvailability.Request {
	return &getMonthAvailability.Request{
		BarberID:  barberID,
		ServiceID: serviceID,
		Year:      year,
		Month:     time.Month(month),
	}
}
