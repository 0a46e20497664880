package contract

import "errors"

// Sentinel errors shared by the service, the stores, and the outer surfaces.
// Match them with errors.Is; callers wrap them with context.
var (
	// ErrDataAccess means the profile store could not be read or written.
	ErrDataAccess = errors.New("data access failed")

	// ErrProfileNotFound means no stored profile has the requested id.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrDuplicateProfile means a profile with the same id already exists.
	ErrDuplicateProfile = errors.New("profile already exists")

	// ErrInvalidAssessment means a submission failed validation.
	ErrInvalidAssessment = errors.New("invalid assessment")
)
