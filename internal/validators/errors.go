package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrFileNotFound      = errors.New("asset file not found")
	ErrThumbnailNotFound = errors.New("thumbnail file not found")
	ErrEmptyCategory     = errors.New("category is required")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrEmptyName         = errors.New("name is required")
	ErrEmptyAuthor       = errors.New("author is required")
)
