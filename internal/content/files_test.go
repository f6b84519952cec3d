package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "b")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))

	files, err := ListFiles(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "b.txt"),
	}, files)

	_, err = ListFiles(filepath.Join(root, "missing"))
	assert.Error(t, err)
}

func TestDeleteFiles(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a.txt")
	writeFile(t, a, "a")

	err := DeleteFiles([]string{a, filepath.Join(root, "gone.txt")})
	require.NoError(t, err)
	assert.NoFileExists(t, a)
}

func TestRemoveEmptyParents(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "x", "y", "z.txt")
	kept := filepath.Join(root, "k", "keep.txt")
	gone := filepath.Join(root, "k", "gone.txt")
	writeFile(t, deep, "z")
	writeFile(t, kept, "k")
	writeFile(t, gone, "g")

	require.NoError(t, DeleteFiles([]string{deep, gone}))
	RemoveEmptyParents([]string{deep, gone}, root)

	assert.NoDirExists(t, filepath.Join(root, "x"))
	assert.DirExists(t, filepath.Join(root, "k"))
	assert.DirExists(t, root)
}

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(src, "park.umap"), "map")
	writeFile(t, filepath.Join(src, "tex", "t.uasset"), "tex")

	written, err := CopyTree(src, dst)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dst, "park.umap"),
		filepath.Join(dst, "tex", "t.uasset"),
	}, written)

	data, err := os.ReadFile(filepath.Join(dst, "tex", "t.uasset"))
	require.NoError(t, err)
	assert.Equal(t, "tex", string(data))
}

func TestOverlaps(t *testing.T) {
	root := filepath.Join("game", "Content")

	tests := []struct {
		name string
		a    string
		want bool
	}{
		{name: "same folder", a: root, want: true},
		{name: "same folder unclean", a: root + string(filepath.Separator) + ".", want: true},
		{name: "inside", a: filepath.Join(root, "Park"), want: true},
		{name: "parent", a: "game", want: true},
		{name: "sibling", a: filepath.Join("game", "Downloads"), want: false},
		{name: "shared prefix", a: filepath.Join("game", "ContentBackup"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, root))
			assert.Equal(t, tt.want, Overlaps(root, tt.a))
		})
	}
}
