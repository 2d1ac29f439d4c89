package services

import "errors"

// Sentinel errors shared across services and mapped to HTTP statuses at the
// handler boundary.
var (
	// ErrIncompleteInput covers every missing-required-field case.
	ErrIncompleteInput = errors.New("please enter all fields")

	// Uniqueness conflicts detected by pre-check or by the database
	// constraint backstop.
	ErrUserExists = errors.New("user already exists with this information")
	ErrTeamExists = errors.New("team name is already in use")

	// Lookup failures.
	ErrUserNotFound       = errors.New("user not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrInviteNotFound     = errors.New("invitation not found")
	ErrTournamentNotFound = errors.New("tournament not found")

	ErrInvalidCredentials = errors.New("invalid identifier or password")

	// ErrInviteAlreadyResolved guards the single pending -> resolved
	// transition of an invitation.
	ErrInviteAlreadyResolved = errors.New("invitation has already been resolved")

	// ErrRegistrationConflict surfaces a duplicate tournament application
	// when the deployment enforces the optional unique index.
	ErrRegistrationConflict = errors.New("member or team has already applied to this tournament")

	// ErrLogoStorageUnavailable is returned when the R2 uploader is not
	// configured.
	ErrLogoStorageUnavailable = errors.New("logo storage is not configured")
)
