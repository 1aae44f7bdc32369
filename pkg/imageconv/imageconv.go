package imageconv

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"colorpicker/pkg/fileutils"

	chaiWebp "github.com/chai2010/webp"
	"github.com/gen2brain/avif"
	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var ImageTypes []string = []string{
	"PNG",
	"JPG",
	"WEBP",
	"GIF",
	"BMP",
	"TIFF",
	"AVIF",
	"QOI",
}

// Encode writes img to w in format (one of ImageTypes). Lossless formats are
// written lossless so gradients survive the export.
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case "PNG":
		err = png.Encode(w, img)
	case "JPG", "JPEG":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "WEBP":
		err = chaiWebp.Encode(w, img, &chaiWebp.Options{Lossless: true})
	case "GIF":
		err = gif.Encode(w, img, &gif.Options{NumColors: 256})
	case "BMP":
		err = bmp.Encode(w, img)
	case "TIFF", "TIF":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "AVIF":
		err = avif.Encode(w, img, avif.Options{Quality: 85})
	case "QOI":
		err = qoi.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", format, err)
	}
	return nil
}

// EncodeBytes encodes img in format and returns the bytes.
func EncodeBytes(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveImage writes img to path in the format picked by its extension.
func SaveImage(path string, img image.Image) error {
	format, ok := fileutils.ImageFormat(path)
	if !ok {
		return fmt.Errorf("%s is not an image file name", path)
	}
	res, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Encode(res, img, format); err != nil {
		res.Close()
		return err
	}
	if err := res.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
