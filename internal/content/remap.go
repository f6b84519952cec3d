package content

import (
	"path/filepath"
	"strings"
)

// Remap converts absolutePath, located under sourceFolder, into the
// equivalent path under destinationRoot.
//
// The first occurrence of sourceFolder inside absolutePath is located and
// everything after it, minus one separator character, is re-rooted under
// destinationRoot. Returns "" when absolutePath does not contain
// sourceFolder, and destinationRoot itself when nothing follows the match.
func Remap(sourceFolder, absolutePath, destinationRoot string) string {
	idx := strings.Index(absolutePath, sourceFolder)
	if idx < 0 {
		return ""
	}

	start := idx + len(sourceFolder)
	if start >= len(absolutePath) {
		return destinationRoot
	}

	relative := absolutePath[start+1:]
	if relative == "" {
		return destinationRoot
	}

	return filepath.Join(destinationRoot, relative)
}

// RemapAll remaps every path and drops the ones that are not under
// sourceFolder.
func RemapAll(sourceFolder string, paths []string, destinationRoot string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if remapped := Remap(sourceFolder, p, destinationRoot); remapped != "" {
			out = append(out, remapped)
		}
	}
	return out
}
