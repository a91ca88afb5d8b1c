package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrChannelAlreadyExists is returned when a channel with the same id or
	// name is already stored.
	ErrChannelAlreadyExists = errors.New("channel already exists")

	// ErrChannelNotFound is returned when a lookup, update or delete targets
	// a channel id that is not stored.
	ErrChannelNotFound = errors.New("channel was not found")

	// ErrStorageBusy is returned when the database rejected an operation
	// for a transient reason (lock contention, lost connection). The caller
	// may try again later.
	ErrStorageBusy = errors.New("storage is temporarily unavailable")

	// ErrRecordFileExists is returned by [RecordFileStorage.CreateRecord]
	// when the target file is already present.
	ErrRecordFileExists = errors.New("record file already exists")

	// ErrRecordFileNotFound is returned when a record file does not exist.
	ErrRecordFileNotFound = errors.New("record file was not found")

	// ErrInvalidRecordName is returned for empty names and names that
	// contain path separators.
	ErrInvalidRecordName = errors.New("invalid record file name")

	// ErrUnknownDialect is returned when a DSN maps to no supported driver.
	ErrUnknownDialect = errors.New("unknown database dialect")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan channel row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan channel rows")
)
