package get_day_slots

import "errors"

var (
	// ErrNotFound возвращается, когда барбер неактивен или не существует
	ErrNotFound = errors.New("barber not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
