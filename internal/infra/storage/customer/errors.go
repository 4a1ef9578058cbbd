package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("storage.customer: customer not found")
	ErrBuildQuery       = errors.New("storage.customer: failed to build query")
	ErrExecQuery        = errors.New("storage.customer: failed to execute query")
	ErrScanRow          = errors.New("storage.customer: failed to scan row")
)
