// Package filex contains small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageSize caps uploads at 10 MiB, matching the backend limit.
const MaxImageSize = 10 << 20

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// ReadImage reads an image file for upload and returns its base name and
// contents. Files with an unrecognized extension or larger than MaxImageSize
// are rejected before any bytes are read.
func ReadImage(path string) (string, []byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := imageExtensions[ext]; !ok {
		return "", nil, fmt.Errorf("unsupported image type %q", ext)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return "", nil, err
	}
	if fi.Size() > MaxImageSize {
		return "", nil, fmt.Errorf("image %s is too large (%d bytes, limit %d)", path, fi.Size(), MaxImageSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	return filepath.Base(path), data, nil
}
