package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-mod-manager/internal/content"
	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/internal/mock"
	"github.com/MKhiriev/go-mod-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMetadataService_CreateFromFolder(t *testing.T) {
	paths := newTestPaths(t)
	svc := paths.metadataService(paths.storage())

	source := filepath.Join(t.TempDir(), "imports", "park")
	writeFile(t, filepath.Join(source, "Maps", "skatepark.umap"), "map")
	writeFile(t, filepath.Join(source, "Maps", "readme.txt"), "hi")

	record, ok := svc.CreateFromFolder(source, true)
	require.True(t, ok)
	assert.Equal(t, "skatepark", record.ItemName)
	assert.Equal(t, filepath.Join(paths.contentRoot, "Maps"), record.ContentDirectory)
	assert.ElementsMatch(t, []string{
		filepath.Join(paths.contentRoot, "Maps", "skatepark.umap"),
		filepath.Join(paths.contentRoot, "Maps", "readme.txt"),
	}, record.FilePaths)

	record, ok = svc.CreateFromFolder(source, false)
	require.True(t, ok)
	assert.NotNil(t, record.FilePaths)
	assert.Empty(t, record.FilePaths)
}

func TestMetadataService_CreateFromFolder_NoValidMap(t *testing.T) {
	paths := newTestPaths(t)
	svc := paths.metadataService(paths.storage())

	source := t.TempDir()
	writeFile(t, filepath.Join(source, "empty.umap"), "")

	_, ok := svc.CreateFromFolder(source, true)
	assert.False(t, ok)
}

func TestMetadataService_CreateFromItem(t *testing.T) {
	paths := newTestPaths(t)
	svc := paths.metadataService(paths.storage())

	item := models.NewContentItem(filepath.Join(paths.contentRoot, "Park", "skatepark.umap"))
	item.CustomName = "Park"

	record := svc.CreateFromItem(item)
	assert.Equal(t, "skatepark", record.ItemName)
	assert.Equal(t, "Park", record.CustomName)
	assert.Equal(t, filepath.Join(paths.contentRoot, "Park"), record.ContentDirectory)
	assert.False(t, record.HasFilePaths())
}

func TestMetadataService_CustomProperties(t *testing.T) {
	paths := newTestPaths(t)
	storage := paths.storage()
	svc := paths.metadataService(storage)

	known := models.NewContentItem(filepath.Join(paths.contentRoot, "Park", "skatepark.umap"))
	unknown := models.NewContentItem(filepath.Join(paths.contentRoot, "Street", "street.umap"))
	require.NoError(t, storage.Save(svc.CreateFromItem(known)))

	known.CustomName = "Park"
	known.IsHiddenByUser = true
	unknown.CustomName = "Street"
	require.NoError(t, svc.WriteCustomProperties([]models.ContentItem{known, unknown}))

	// unknown items are skipped on write
	_, ok := storage.Load(unknown.Key())
	assert.False(t, ok)

	items := svc.ApplyCustomProperties([]models.ContentItem{
		models.NewContentItem(known.FullPath),
		models.NewContentItem(unknown.FullPath),
	}, false)
	require.Len(t, items, 2)
	assert.Equal(t, "Park", items[0].CustomName)
	assert.True(t, items[0].IsHiddenByUser)
	assert.Equal(t, "Park", items[0].DisplayName())
	assert.Empty(t, items[1].CustomName)

	// createIfMissing stores a degraded record
	svc.ApplyCustomProperties([]models.ContentItem{models.NewContentItem(unknown.FullPath)}, true)
	record, ok := storage.Load(unknown.Key())
	require.True(t, ok)
	assert.False(t, record.HasFilePaths())
}

func TestMetadataService_WriteCustomProperties_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockMetadataStorage(ctrl)
	svc := NewMetadataService(storage, content.NewMapScanner(logger.Nop()), t.TempDir(), logger.Nop())

	item := models.NewContentItem("/content/Park/skatepark.umap")
	storage.EXPECT().Load(item.Key()).Return(models.ContentMetadata{ItemName: "skatepark"}, true)
	storage.EXPECT().Save(gomock.Any()).Return(assert.AnError)

	assert.ErrorIs(t, svc.WriteCustomProperties([]models.ContentItem{item}), assert.AnError)
}

func TestMetadataService_ImportLocation(t *testing.T) {
	paths := newTestPaths(t)
	storage := paths.storage()
	svc := paths.metadataService(storage)

	item := models.NewContentItem(filepath.Join(paths.contentRoot, "Park", "skatepark.umap"))
	assert.Empty(t, svc.OriginalImportLocation(item))
	assert.False(t, svc.IsImportLocationStored(item))
	assert.False(t, svc.HasFilePathsStored(item))

	record := svc.CreateFromItem(item)
	record.OriginalImportPath = "/imports/park"
	record.FilePaths = []string{item.FullPath}
	require.NoError(t, storage.Save(record))

	assert.Equal(t, "/imports/park", svc.OriginalImportLocation(item))
	assert.True(t, svc.IsImportLocationStored(item))
	assert.True(t, svc.HasFilePathsStored(item))
}

func TestMetadataService_ImportFolder(t *testing.T) {
	paths := newTestPaths(t)
	storage := paths.storage()
	svc := paths.metadataService(storage)

	source := filepath.Join(t.TempDir(), "park")
	writeFile(t, filepath.Join(source, "skatepark", "skatepark.umap"), "map")
	writeFile(t, filepath.Join(source, "skatepark", "Textures", "rail.uasset"), "texture")

	result := svc.ImportFolder(context.Background(), source)
	require.True(t, result.Success, result.Message)
	assert.Equal(t, "skatepark has been imported!", result.Message)

	assert.FileExists(t, filepath.Join(paths.contentRoot, "skatepark", "skatepark.umap"))
	assert.FileExists(t, filepath.Join(paths.contentRoot, "skatepark", "Textures", "rail.uasset"))
	assert.FileExists(t, filepath.Join(source, "skatepark", "skatepark.umap"))

	installed := svc.ListInstalled()
	require.Len(t, installed, 1)
	assert.Equal(t, source, installed[0].OriginalImportPath)
	assert.Len(t, installed[0].FilePaths, 2)

	// re-import keeps the user's properties
	installed[0].CustomName = "Park"
	require.NoError(t, storage.Save(installed[0]))
	result = svc.ImportFolder(context.Background(), source)
	require.True(t, result.Success)
	record, ok := storage.Load(installed[0].Key())
	require.True(t, ok)
	assert.Equal(t, "Park", record.CustomName)
}

func TestMetadataService_ImportFolder_NoMap(t *testing.T) {
	paths := newTestPaths(t)
	svc := paths.metadataService(paths.storage())

	result := svc.ImportFolder(context.Background(), t.TempDir())
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, ErrNoValidMap.Error())
	assert.Empty(t, svc.ListInstalled())
}

func TestMetadataService_ImportFolder_ContentFolderRefused(t *testing.T) {
	paths := newTestPaths(t)
	storage := paths.storage()
	svc := paths.metadataService(storage)

	mapFile := filepath.Join(paths.contentRoot, "skatepark", "skatepark.umap")
	writeFile(t, mapFile, "map")

	tests := []struct {
		name   string
		folder string
	}{
		{name: "content root", folder: paths.contentRoot},
		{name: "content root with trailing separator", folder: paths.contentRoot + string(filepath.Separator)},
		{name: "folder inside content root", folder: filepath.Join(paths.contentRoot, "skatepark")},
		{name: "parent of content root", folder: filepath.Dir(paths.contentRoot)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.ImportFolder(context.Background(), tt.folder)

			assert.False(t, result.Success)
			assert.Contains(t, result.Message, ErrImportOverlapsContent.Error())
			data, err := os.ReadFile(mapFile)
			require.NoError(t, err)
			assert.Equal(t, "map", string(data))
			assert.Empty(t, svc.ListInstalled())
		})
	}
}
