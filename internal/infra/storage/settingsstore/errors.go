package settingsstore

import "errors"

var (
	ErrBuildQuery = errors.New("storage.settingsstore: failed to build query")
	ErrExecQuery  = errors.New("storage.settingsstore: failed to execute query")
	ErrScanRow    = errors.New("storage.settingsstore: failed to scan row")
)
