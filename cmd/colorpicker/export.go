package main

import (
	"fmt"
	"strings"

	"colorpicker/pkg/archives"
	"colorpicker/pkg/colorutils"
	"colorpicker/pkg/fileutils"
	"colorpicker/pkg/gradient"
	"colorpicker/pkg/imageconv"
	"colorpicker/pkg/options"
)

// exportColor writes the accepted color to path: a composite image for an
// image extension, a bundle of the separate renderings for an archive one.
func exportColor(path string, c colorutils.Color, swatches []string, opts *options.Options, password string) error {
	if _, ok := fileutils.ImageFormat(path); ok {
		sheet := gradient.Sheet(c.HSV.H, swatches, opts.Plane.Width, opts.Plane.Height, opts.HueBar.Width)
		if err := imageconv.SaveImage(path, sheet); err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
		return nil
	}
	if _, ok := fileutils.ArchiveKind(path); ok {
		entries, err := bundleEntries(c, swatches, opts)
		if err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
		if err := archives.CreateArchive(path, entries, password); err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("export %s: unsupported file type", path)
}

func bundleEntries(c colorutils.Color, swatches []string, opts *options.Options) ([]archives.Entry, error) {
	hue, err := imageconv.EncodeBytes(gradient.HueRamp(opts.HueBar.Width, opts.HueBar.Height), "PNG")
	if err != nil {
		return nil, err
	}
	plane, err := imageconv.EncodeBytes(gradient.Plane(c.HSV.H, opts.Plane.Width, opts.Plane.Height), "PNG")
	if err != nil {
		return nil, err
	}
	entries := []archives.Entry{
		{Name: "hue.png", Data: hue},
		{Name: "plane.png", Data: plane},
	}
	if len(swatches) > 0 {
		strip, err := imageconv.EncodeBytes(gradient.SwatchStrip(swatches, opts.HueBar.Width), "PNG")
		if err != nil {
			return nil, err
		}
		entries = append(entries, archives.Entry{Name: "swatches.png", Data: strip})
	}
	entries = append(entries, archives.Entry{Name: "palette.txt", Data: []byte(paletteText(c, swatches))})
	return entries, nil
}

// paletteText lists the accepted color first, then the swatches, one hex per
// line.
func paletteText(c colorutils.Color, swatches []string) string {
	var b strings.Builder
	b.WriteString(c.String())
	b.WriteByte('\n')
	for _, hex := range swatches {
		b.WriteString("#" + hex)
		b.WriteByte('\n')
	}
	return b.String()
}
