package businesssettings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных значениях настроек
	ErrInvalidInput = errors.New("service.businesssettings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.businesssettings: internal error")
)
