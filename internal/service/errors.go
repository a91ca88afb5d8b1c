package service

import (
	"errors"

	"github.com/MKhiriev/go-csv-keeper/internal/validators"
)

var (
	// ErrInvalidDataProvided wraps every validation failure.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAmbiguousCredentials is returned when an exchange request carries
	// both or neither of the admin and user passwords.
	ErrAmbiguousCredentials = validators.ErrAmbiguousCredentials

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
