// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-mod-manager/internal/app"
	"github.com/MKhiriev/go-mod-manager/models"
)

// Field names of [models.UploadRequest] accepted by [UploadRequestValidator].
const (
	FieldPathToFile      = "path_to_file"
	FieldPathToThumbnail = "path_to_thumbnail"
	FieldCategory        = "category"
	FieldName            = "name"
	FieldAuthor          = "author"
)

// uploadRequestFields is the default check order.
var uploadRequestFields = []string{
	FieldPathToFile,
	FieldPathToThumbnail,
	FieldCategory,
	FieldName,
	FieldAuthor,
}

// UploadRequestValidator checks an asset upload request. Failures are
// returned as *[models.ValidationError] carrying the message shown to the
// user and wrapping one of the sentinel errors of this package.
type UploadRequestValidator struct{}

// NewUploadRequestValidator constructs an UploadRequestValidator.
func NewUploadRequestValidator() Validator {
	return &UploadRequestValidator{}
}

// Validate implements [Validator] for models.UploadRequest and its pointer.
func (v *UploadRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UploadRequestValidator) validateUploadRequest(_ context.Context, req models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = uploadRequestFields
	}

	for _, f := range fields {
		switch f {
		case FieldPathToFile:
			if !isRegularFile(req.PathToFile) {
				return invalid(ErrFileNotFound, fmt.Sprintf(app.MsgFileNotFoundFmt, req.PathToFile))
			}
		case FieldPathToThumbnail:
			if !isRegularFile(req.PathToThumbnail) {
				return invalid(ErrThumbnailNotFound, fmt.Sprintf(app.MsgThumbnailNotFoundFmt, req.PathToThumbnail))
			}
		case FieldCategory:
			if strings.TrimSpace(req.Category) == "" {
				return invalid(ErrEmptyCategory, app.MsgCategoryRequired)
			}
			if _, err := models.ParseCategory(req.Category); err != nil {
				return invalid(ErrUnknownCategory, fmt.Sprintf(app.MsgUnknownCategoryFmt, req.Category))
			}
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return invalid(ErrEmptyName, app.MsgNameRequired)
			}
		case FieldAuthor:
			if strings.TrimSpace(req.Author) == "" {
				return invalid(ErrEmptyAuthor, app.MsgAuthorRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func invalid(err error, message string) error {
	return &models.ValidationError{Message: message, Err: err}
}

func isRegularFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
