package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается при дате записи в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrDayOff возвращается при попытке записи на нерабочий день
	ErrDayOff = errors.New("create_reservation: salon is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не попадает в сетку слотов
	ErrInvalidTimeSlot = errors.New("create_reservation: time does not match the slot grid")

	// ErrTooLateToBook возвращается при нарушении минимального зазора до начала
	ErrTooLateToBook = errors.New("create_reservation: too late to book this slot")

	// ErrTimeBlocked возвращается, когда запрошенное время закрыто администратором
	ErrTimeBlocked = errors.New("create_reservation: time is blocked")

	// ErrSlotTaken возвращается, когда слот уже занят другой записью
	ErrSlotTaken = errors.New("create_reservation: slot is already taken")

	// ErrServiceNotFound возвращается, когда услуга не найдена или скрыта из каталога
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
