package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда запись не найдена
	ErrReservationNotFound = errors.New("service.reservations: reservation not found")

	// ErrAlreadyCancelled возвращается при повторной отмене записи
	ErrAlreadyCancelled = errors.New("service.reservations: reservation is already cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.reservations: internal error")
)
