package validators

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-mod-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUploadRequest(t *testing.T) models.UploadRequest {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "skatepark.zip")
	thumb := filepath.Join(dir, "skatepark.png")
	require.NoError(t, os.WriteFile(file, []byte("zip"), 0o644))
	require.NoError(t, os.WriteFile(thumb, []byte("png"), 0o644))

	return models.UploadRequest{
		Name:            "Skatepark",
		Author:          "rasul",
		Category:        "Maps",
		PathToFile:      file,
		PathToThumbnail: thumb,
	}
}

func TestUploadRequestValidator_Valid(t *testing.T) {
	v := NewUploadRequestValidator()
	req := validUploadRequest(t)

	assert.NoError(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), &req))
}

func TestUploadRequestValidator_Failures(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(req *models.UploadRequest)
		wantErr error
		message string
	}{
		{
			name:    "file missing",
			modify:  func(req *models.UploadRequest) { req.PathToFile = "/missing.zip"; req.Author = "" },
			wantErr: ErrFileNotFound,
			message: "File does not exist at /missing.zip.",
		},
		{
			name:    "file is a folder",
			modify:  func(req *models.UploadRequest) { req.PathToFile = filepath.Dir(req.PathToFile) },
			wantErr: ErrFileNotFound,
		},
		{
			name:    "thumbnail missing",
			modify:  func(req *models.UploadRequest) { req.PathToThumbnail = "" },
			wantErr: ErrThumbnailNotFound,
			message: "Thumbnail does not exist at .",
		},
		{
			name:    "category empty",
			modify:  func(req *models.UploadRequest) { req.Category = " " },
			wantErr: ErrEmptyCategory,
			message: "Please select an Asset Category first.",
		},
		{
			name:    "category unknown",
			modify:  func(req *models.UploadRequest) { req.Category = "maps" },
			wantErr: ErrUnknownCategory,
			message: `Unknown asset category "maps".`,
		},
		{
			name:    "name empty",
			modify:  func(req *models.UploadRequest) { req.Name = "" },
			wantErr: ErrEmptyName,
			message: "Please provide a Name for the asset.",
		},
		{
			name:    "author empty",
			modify:  func(req *models.UploadRequest) { req.Author = "" },
			wantErr: ErrEmptyAuthor,
			message: "Please provide an Author for the asset.",
		},
	}

	v := NewUploadRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUploadRequest(t)
			tt.modify(&req)

			err := v.Validate(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)

			var validationErr *models.ValidationError
			require.ErrorAs(t, err, &validationErr)
			if tt.message != "" {
				assert.Equal(t, tt.message, validationErr.Message)
				assert.EqualError(t, err, tt.message)
			}
		})
	}
}

func TestUploadRequestValidator_FieldScoping(t *testing.T) {
	v := NewUploadRequestValidator()
	req := models.UploadRequest{Name: "Skatepark"}

	assert.NoError(t, v.Validate(context.Background(), req, FieldName))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldName, FieldAuthor), ErrEmptyAuthor)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "checksum"), ErrUnknownField)
}

func TestUploadRequestValidator_UnsupportedType(t *testing.T) {
	v := NewUploadRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), models.Asset{}), ErrUnsupportedType)
}
