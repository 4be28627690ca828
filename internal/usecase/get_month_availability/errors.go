package get_month_availability

import "errors"

var (
	// ErrNotFound возвращается, когда барбер неактивен, не существует
	// или не оказывает запрошенную услугу
	ErrNotFound = errors.New("barber or service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
