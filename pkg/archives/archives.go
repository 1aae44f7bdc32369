package archives

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"time"

	"colorpicker/pkg/fileutils"

	"github.com/alexmullins/zip"
	"github.com/dsnet/compress/bzip2"
)

// Entry is one file of an export bundle.
type Entry struct {
	Name string
	Data []byte
}

// CreateArchive writes entries to archivePath in the kind picked by its
// suffix. A non-empty password encrypts zip entries; tar bundles ignore it.
func CreateArchive(archivePath string, entries []Entry, password string) error {
	kind, ok := fileutils.ArchiveKind(archivePath)
	if !ok {
		return fmt.Errorf("%s is not an archive file name", archivePath)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no files to archive")
	}

	archive, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer archive.Close()

	switch kind {
	case "ZIP":
		err = WriteZip(archive, entries, password)
	case "TAR.GZ":
		err = WriteTarGzip(archive, entries)
	case "TAR.BZ2":
		err = WriteTarBzip2(archive, entries)
	}
	if err != nil {
		return err
	}

	// Ensure archive is closed properly
	if err := archive.Close(); err != nil {
		return fmt.Errorf("failed to close archive: %w", err)
	}
	return nil
}

// WriteZip writes entries as a zip archive, AES encrypted when password is set.
func WriteZip(w io.Writer, entries []Entry, password string) error {
	zipWriter := zip.NewWriter(w)
	for _, e := range entries {
		var (
			f   io.Writer
			err error
		)
		if password != "" {
			f, err = zipWriter.Encrypt(e.Name, password)
		} else {
			f, err = zipWriter.Create(e.Name)
		}
		if err != nil {
			return fmt.Errorf("failed to add file %s to archive: %w", e.Name, err)
		}
		if _, err := f.Write(e.Data); err != nil {
			return fmt.Errorf("failed to write file %s to archive: %w", e.Name, err)
		}
	}
	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("failed to close zip writer: %w", err)
	}
	return nil
}

// WriteTarGzip writes entries as a gzip compressed tarball.
func WriteTarGzip(w io.Writer, entries []Entry) error {
	gzipWriter := gzip.NewWriter(w)
	if err := writeTar(gzipWriter, entries); err != nil {
		return err
	}
	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to close gzip writer: %w", err)
	}
	return nil
}

// WriteTarBzip2 writes entries as a bzip2 compressed tarball.
func WriteTarBzip2(w io.Writer, entries []Entry) error {
	bzipWriter, err := bzip2.NewWriter(w, &bzip2.WriterConfig{
		Level: bzip2.BestCompression,
	})
	if err != nil {
		return fmt.Errorf("failed to create bzip2 writer: %w", err)
	}
	if err := writeTar(bzipWriter, entries); err != nil {
		return err
	}
	if err := bzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to close bzip2 writer: %w", err)
	}
	return nil
}

func writeTar(w io.Writer, entries []Entry) error {
	tarWriter := tar.NewWriter(w)
	now := time.Now()
	for _, e := range entries {
		header := &tar.Header{
			Name:    e.Name,
			Mode:    0o644,
			Size:    int64(len(e.Data)),
			ModTime: now,
		}
		if err := tarWriter.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to add file %s to archive: %w", e.Name, err)
		}
		if _, err := tarWriter.Write(e.Data); err != nil {
			return fmt.Errorf("failed to write file %s to archive: %w", e.Name, err)
		}
	}
	if err := tarWriter.Close(); err != nil {
		return fmt.Errorf("failed to close tar writer: %w", err)
	}
	return nil
}
