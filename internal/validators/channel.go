package validators

import (
	"context"
	"encoding/base64"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-csv-keeper/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldChannelID targets the UUID of a channel.
	FieldChannelID = "channel_id"

	// FieldName targets the human-readable channel name.
	FieldName = "name"

	// FieldAdminPassword targets the guarding password of a new channel.
	FieldAdminPassword = "admin_password"

	// FieldUserPassword targets the per-user password of a new channel.
	FieldUserPassword = "user_password"

	// FieldOldAdminPassword and FieldNewAdminPassword target a rotation request.
	FieldOldAdminPassword = "old_admin_password"
	FieldNewAdminPassword = "new_admin_password"

	// FieldCredentials targets the admin/user password pair of an exchange.
	FieldCredentials = "credentials"

	// FieldCSV targets the plaintext CSV of an export request.
	FieldCSV = "csv"

	// FieldProtected targets the protected text of an import request.
	FieldProtected = "protected"
)

const (
	// MaxChannelNameLength is the longest accepted channel name in runes.
	MaxChannelNameLength = 128

	// MaxPayloadSize bounds plaintext and protected CSV documents.
	MaxPayloadSize = 32 << 20
)

const (
	gcmNonceSize = 12
	gcmTagSize   = 16
)

// ChannelID is a channel identifier wrapped so that it can be dispatched by
// [ChannelValidator.Validate].
type ChannelID string

// ChannelValidator implements [Validator] for channel and exchange requests.
// Both value and pointer forms of each supported model are accepted; optional
// field names restrict validation to a subset.
type ChannelValidator struct {
	maxPayloadSize int
}

// NewChannelValidator constructs a new ChannelValidator and returns it as
// the Validator interface.
func NewChannelValidator() Validator {
	return &ChannelValidator{maxPayloadSize: MaxPayloadSize}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - ChannelID
//   - models.CreateChannelRequest / *models.CreateChannelRequest
//   - models.RotateGuardRequest / *models.RotateGuardRequest
//   - models.Credentials / *models.Credentials
//   - models.ExportRequest / *models.ExportRequest
//   - models.ImportRequest / *models.ImportRequest
func (v *ChannelValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case ChannelID:
		return validateChannelID(string(value))

	case models.CreateChannelRequest:
		return v.validateCreateChannel(value, fields...)
	case *models.CreateChannelRequest:
		return v.validateCreateChannel(*value, fields...)

	case models.RotateGuardRequest:
		return v.validateRotateGuard(value, fields...)
	case *models.RotateGuardRequest:
		return v.validateRotateGuard(*value, fields...)

	case models.Credentials:
		return validateCredentials(value)
	case *models.Credentials:
		return validateCredentials(*value)

	case models.ExportRequest:
		return v.validateExport(value, fields...)
	case *models.ExportRequest:
		return v.validateExport(*value, fields...)

	case models.ImportRequest:
		return v.validateImport(value, fields...)
	case *models.ImportRequest:
		return v.validateImport(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ChannelValidator) validateCreateChannel(req models.CreateChannelRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldAdminPassword, FieldUserPassword}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldName:
			err = validateChannelName(req.Name)
		case FieldAdminPassword:
			if req.AdminPassword == "" {
				err = ErrEmptyAdminPassword
			}
		case FieldUserPassword:
			switch {
			case req.UserPassword == "":
				err = ErrEmptyUserPassword
			case req.UserPassword == req.AdminPassword:
				err = ErrSamePasswords
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ChannelValidator) validateRotateGuard(req models.RotateGuardRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldAdminPassword, FieldNewAdminPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldOldAdminPassword:
			if req.OldAdminPassword == "" {
				return fmt.Errorf("%w: old", ErrEmptyAdminPassword)
			}
		case FieldNewAdminPassword:
			if req.NewAdminPassword == "" {
				return fmt.Errorf("%w: new", ErrEmptyAdminPassword)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ChannelValidator) validateExport(req models.ExportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredentials, FieldCSV}
	}

	for _, field := range fields {
		switch field {
		case FieldCredentials:
			if err := validateCredentials(req.Credentials); err != nil {
				return err
			}
		case FieldCSV:
			// an empty document is a valid export
			if len(req.CSV) > v.maxPayloadSize {
				return ErrPayloadTooLarge
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ChannelValidator) validateImport(req models.ImportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredentials, FieldProtected}
	}

	for _, field := range fields {
		switch field {
		case FieldCredentials:
			if err := validateCredentials(req.Credentials); err != nil {
				return err
			}
		case FieldProtected:
			if req.Protected == "" {
				return ErrEmptyProtectedData
			}
			if len(req.Protected) > v.maxProtectedSize() {
				return ErrPayloadTooLarge
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// maxProtectedSize is the length of the protected text of a maximal
// plaintext: base64 nonce, separator and base64 of ciphertext plus GCM tag.
func (v *ChannelValidator) maxProtectedSize() int {
	return base64.StdEncoding.EncodedLen(gcmNonceSize) + 1 +
		base64.StdEncoding.EncodedLen(v.maxPayloadSize+gcmTagSize)
}

func validateChannelID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidChannelID, id)
	}
	return nil
}

func validateChannelName(name string) error {
	if name == "" {
		return ErrEmptyChannelName
	}

	if !utf8.ValidString(name) || utf8.RuneCountInString(name) > MaxChannelNameLength {
		return ErrInvalidChannelName
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return ErrInvalidChannelName
		}
	}

	return nil
}

func validateCredentials(creds models.Credentials) error {
	if !creds.IsValid() {
		return ErrAmbiguousCredentials
	}
	return nil
}
