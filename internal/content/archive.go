package content

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// ErrNotAnArchive is returned when a downloaded package is not a zip file.
var ErrNotAnArchive = errors.New("package is not a zip archive")

// ExtractZip extracts archivePath into dest and returns the paths of the
// files written. Entry names are resolved inside dest, so entries such as
// "../x" cannot escape it.
func ExtractZip(archivePath, dest string) ([]string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrNotAnArchive, archivePath)
		}
		return nil, fmt.Errorf("open archive %s: %w", archivePath, err)
	}
	defer r.Close()

	written := make([]string, 0, len(r.File))
	for _, f := range r.File {
		target, err := securejoin.SecureJoin(dest, f.Name)
		if err != nil {
			return written, fmt.Errorf("resolve archive entry %s: %w", f.Name, err)
		}

		if f.FileInfo().IsDir() {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return written, fmt.Errorf("create folder %s: %w", target, err)
			}
			continue
		}

		if err = extractFile(f, target); err != nil {
			return written, err
		}
		written = append(written, target)
	}

	return written, nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create folder for %s: %w", target, err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open archive entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}

	if _, err = io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("extract %s: %w", f.Name, err)
	}

	return out.Close()
}
