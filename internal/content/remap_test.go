package content

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemap(t *testing.T) {
	tests := []struct {
		name   string
		source string
		path   string
		dest   string
		want   string
	}{
		{
			name:   "file directly under source",
			source: "C:/src/mapA",
			path:   "C:/src/mapA/file.dat",
			dest:   "D:/content",
			want:   filepath.Join("D:/content", "file.dat"),
		},
		{
			name:   "path outside source",
			source: "C:/src/mapA",
			path:   "C:/other/file.dat",
			dest:   "D:/content",
			want:   "",
		},
		{
			name:   "path equals source",
			source: "C:/src/mapA",
			path:   "C:/src/mapA",
			dest:   "D:/content",
			want:   "D:/content",
		},
		{
			name:   "nested file",
			source: "/imports/park",
			path:   "/imports/park/Maps/park/park.umap",
			dest:   "/game/Content",
			want:   filepath.Join("/game/Content", "Maps", "park", "park.umap"),
		},
		{
			name:   "trailing separator on path only",
			source: "/imports/park",
			path:   "/imports/park/",
			dest:   "/game/Content",
			want:   "/game/Content",
		},
		{
			name:   "trailing separator on source",
			source: "/imports/park/",
			path:   "/imports/park/park.umap",
			dest:   "/game/Content",
			want:   filepath.Join("/game/Content", "ark.umap"),
		},
		{
			name:   "overlapping prefix uses first occurrence",
			source: "/a/a",
			path:   "/a/a/a/file.dat",
			dest:   "/dest",
			want:   filepath.Join("/dest", "a", "file.dat"),
		},
		{
			name:   "source occurs later in the path",
			source: "mapA",
			path:   "/x/mapA/y.dat",
			dest:   "/dest",
			want:   filepath.Join("/dest", "y.dat"),
		},
		{
			name:   "sibling folder sharing a prefix",
			source: "/imports/park",
			path:   "/imports/parkour/file.dat",
			dest:   "/dest",
			want:   filepath.Join("/dest", "ur", "file.dat"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Remap(tt.source, tt.path, tt.dest))
		})
	}
}

func TestRemapAll_SkipsNotRemappable(t *testing.T) {
	got := RemapAll("/src", []string{"/src/a.umap", "/elsewhere/b.umap", "/src/sub/c.uasset"}, "/dst")

	assert.Equal(t, []string{
		filepath.Join("/dst", "a.umap"),
		filepath.Join("/dst", "sub", "c.uasset"),
	}, got)
}
