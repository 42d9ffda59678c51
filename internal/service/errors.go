package service

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid username or password")
	ErrWeakPassword           = errors.New("password must be at least 8 characters and contain upper and lower case letters, a digit and a special character")
	ErrInvalidDateRange       = errors.New("invalid rental date range")
	ErrRentalConflict         = errors.New("requested dates conflict with an existing rental")
	ErrDuplicateCameraCode    = errors.New("camera code already exists")
	ErrDuplicateUsername      = errors.New("username already exists")
	ErrCameraHasActiveRentals = errors.New("camera has active rentals and cannot be deleted")
	ErrCannotDeleteSelf       = errors.New("cannot delete your own account")
	ErrInvalidRole            = errors.New("role must be admin or agent")
	ErrInvalidStatus          = errors.New("invalid status value")
	ErrMissingFields          = errors.New("required fields are missing")
)
