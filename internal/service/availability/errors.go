package availability

import "errors"

var (
	// ErrNotFound возвращается, когда барбер неактивен, не существует
	// или не оказывает запрошенную услугу
	ErrNotFound = errors.New("availability.service: barber or service not found")

	// ErrInvalidSchedule возвращается при некорректном рабочем окне барбера
	// (hora_inicio >= hora_fin или неразбираемое время)
	ErrInvalidSchedule = errors.New("availability.service: invalid working hours")

	// ErrInternal возвращается при ошибках нижележащих хранилищ
	ErrInternal = errors.New("availability.service: internal error")
)
