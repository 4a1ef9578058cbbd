package customers

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("service.customers: customer not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.customers: internal error")
)
