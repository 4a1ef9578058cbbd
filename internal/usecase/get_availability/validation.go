package get_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.UserType.Valid() {
		return fmt.Errorf("%w: unknown user type %q", ErrInvalidInput, req.UserType)
	}

	return nil
}
