package depreciation

import "errors"

var (
	// ErrAssetNotFound covers unknown asset IDs and assets belonging to
	// another user alike, so that IDs cannot be probed across tenants.
	ErrAssetNotFound = errors.New("there is no depreciation asset matching your query")

	// ErrInvalidScheduleParameters indicates an asset with a
	// non-positive base value, duration or rate. Assets are validated
	// on save, so hitting this means an upstream bug, not user error.
	ErrInvalidScheduleParameters = errors.New("depreciation schedule parameters must be positive")
)
