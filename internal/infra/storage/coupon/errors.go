package coupon

import "errors"

var (
	ErrBuildQuery = errors.New("storage.coupon: failed to build query")
	ErrExecQuery  = errors.New("storage.coupon: failed to execute query")
	ErrScanRow    = errors.New("storage.coupon: failed to scan row")
)
