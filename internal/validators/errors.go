package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidChannelID     = errors.New("invalid channel ID")
	ErrEmptyChannelName     = errors.New("channel name is required")
	ErrInvalidChannelName   = errors.New("channel name is too long or contains control characters")
	ErrEmptyAdminPassword   = errors.New("admin password is required")
	ErrEmptyUserPassword    = errors.New("user password is required")
	ErrSamePasswords        = errors.New("user password must differ from admin password")
	ErrAmbiguousCredentials = errors.New("exactly one of admin password or user password must be provided")
	ErrEmptyProtectedData   = errors.New("protected data is required")
	ErrPayloadTooLarge      = errors.New("payload is too large")
)
