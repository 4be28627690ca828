package create_reservation

import "errors"

var (
	// ErrNotFound возвращается, когда барбер или услуга не найдены,
	// либо барбер не оказывает запрошенную услугу
	ErrNotFound = errors.New("create_reservation: barber or service not found")

	// ErrInvalidDate возвращается при попытке записи на прошедшую дату
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrDayNotWorking возвращается, когда барбер не работает в этот день недели
	ErrDayNotWorking = errors.New("create_reservation: barber does not work on this day")

	// ErrDayBlocked возвращается, когда день закрыт блокировкой целиком
	ErrDayBlocked = errors.New("create_reservation: day is blocked")

	// ErrOutsideWorkingHours возвращается, когда запись не помещается в рабочее окно
	ErrOutsideWorkingHours = errors.New("create_reservation: time is outside working hours")

	// ErrInvalidTimeSlot возвращается, когда время не выровнено по сетке слотов
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrTooLateToBook возвращается при нарушении минимального запаса времени
	// для записи на сегодня
	ErrTooLateToBook = errors.New("create_reservation: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с существующей
	// записью или блокировкой
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
