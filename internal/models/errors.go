package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrPropertyInvalid is returned when a referenced property does not
	// exist or belongs to another user. Both cases are reported
	// identically so that property IDs cannot be enumerated across
	// tenants.
	ErrPropertyInvalid = errors.New("the referenced property does not exist")

	ErrAssetValuesInvalid = errors.New("base value, duration and rate of a depreciation asset must be positive")

	ErrEntryYearExists = errors.New("a depreciation entry already exists for this asset and year")
	ErrReportExists    = errors.New("a report of this type already exists for this fiscal year")
)
