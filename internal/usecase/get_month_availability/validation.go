package get_month_availability

import (
	"fmt"
	"time"
)

// границы разумных запросов по годам
const (
	minYear = 2020
	maxYear = 2100
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Year < minYear || req.Year > maxYear {
		return fmt.Errorf("%w: year must be in [%d, %d]", ErrInvalidInput, minYear, maxYear)
	}

	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be in [1, 12]", ErrInvalidInput)
	}

	return nil
}
