package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCreatingMetadataFolder is returned when the metadata folder cannot
	// be created.
	ErrCreatingMetadataFolder = errors.New("failed to create metadata folder")

	// ErrEncodingMetadata is returned when a record cannot be serialized.
	ErrEncodingMetadata = errors.New("failed to encode metadata")

	// ErrWritingMetadata is returned when a record file cannot be written.
	ErrWritingMetadata = errors.New("failed to write metadata file")

	// ErrRemovingMetadata is returned when a record file exists but cannot
	// be removed.
	ErrRemovingMetadata = errors.New("failed to remove metadata file")

	// ErrEmptyItemName is returned when a record without identity is saved.
	ErrEmptyItemName = errors.New("metadata item name is empty")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan settings row")
)
