package service

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-mod-manager/internal/content"
	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/internal/store"
	"github.com/stretchr/testify/require"
)

// testPaths is a throwaway content folder plus the store data folders.
type testPaths struct {
	contentRoot string
	metadataDir string
	downloads   string
	thumbnails  string
}

func newTestPaths(t *testing.T) testPaths {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "Content")
	return testPaths{
		contentRoot: root,
		metadataDir: filepath.Join(root, "MapSwitcherMetaData"),
		downloads:   filepath.Join(base, "store_data", "temp_downloads"),
		thumbnails:  filepath.Join(base, "store_data", "thumbnails"),
	}
}

func (p testPaths) storage() store.MetadataStorage {
	return store.NewMetadataFileStorage(p.contentRoot, p.metadataDir, logger.Nop())
}

func (p testPaths) metadataService(storage store.MetadataStorage) *metadataService {
	return NewMetadataService(storage, content.NewMapScanner(logger.Nop()), p.contentRoot, logger.Nop()).(*metadataService)
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

// writeZip creates a zip archive at path holding files keyed by their
// slash-separated name.
func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, data := range files {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(data))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

// skateparkPackage is the content of a packaged map with its lighting data.
var skateparkPackage = map[string]string{
	"skatepark/skatepark.umap":             "map",
	"skatepark/skatepark_BuiltData.uasset": "lighting",
	"skatepark/Textures/rail.uasset":       "texture",
}
