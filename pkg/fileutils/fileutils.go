package fileutils

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	imageMap = map[string]string{
		".png":  "PNG",
		".jpg":  "JPG",
		".jpeg": "JPG",
		".gif":  "GIF",
		".bmp":  "BMP",
		".tiff": "TIFF",
		".tif":  "TIFF",
		".webp": "WEBP",
		".qoi":  "QOI",
		".avif": "AVIF",
	}
	// checked longest first so ".tar.gz" wins over ".gz"
	archiveSuffixes = []struct {
		suffix string
		kind   string
	}{
		{".tar.bz2", "TAR.BZ2"},
		{".tar.gz", "TAR.GZ"},
		{".tbz2", "TAR.BZ2"},
		{".tgz", "TAR.GZ"},
		{".zip", "ZIP"},
	}
)

func IsFile(path string) (bool, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return !fileInfo.IsDir(), nil
}

func IsImageFileMap(filename string) bool {
	_, ok := ImageFormat(filename)
	return ok
}

// ImageFormat returns the export format for filename's extension.
func ImageFormat(filename string) (string, bool) {
	format, ok := imageMap[strings.ToLower(filepath.Ext(filename))]
	return format, ok
}

// ArchiveKind returns the bundle kind for filename: "ZIP", "TAR.GZ" or "TAR.BZ2".
func ArchiveKind(filename string) (string, bool) {
	lower := strings.ToLower(filename)
	for _, a := range archiveSuffixes {
		if strings.HasSuffix(lower, a.suffix) {
			return a.kind, true
		}
	}
	return "", false
}
