package catalog

import "errors"

var (
	ErrServiceNotFound = errors.New("storage.catalog: service not found")
	ErrBuildQuery      = errors.New("storage.catalog: failed to build query")
	ErrExecQuery       = errors.New("storage.catalog: failed to execute query")
	ErrScanRow         = errors.New("storage.catalog: failed to scan row")
)
