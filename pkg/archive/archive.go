// Package archive reads packaged TachyFont archives.
//
// A TachyFont archive is a zip file with a ".TachyFont.jar" extension
// holding the base font and its incremental glyph data. This package only
// ever reads: it can check that an archive exists and list its contents.
// Producing archives is a bundling-time concern handled elsewhere.
package archive

import (
	"os"
	"sort"

	"github.com/klauspost/compress/zip"

	"github.com/tachyfont/tachypack/pkg/errors"
)

// Entry describes a single file inside an archive.
type Entry struct {
	Name             string // path within the archive
	UncompressedSize uint64 // size when extracted
	CompressedSize   uint64 // size as stored
}

// Info summarizes an archive's contents.
type Info struct {
	Path    string  // archive path on disk
	Size    int64   // archive file size in bytes
	Entries []Entry // entries sorted by name
}

// TotalUncompressed returns the sum of all entry sizes when extracted.
func (i *Info) TotalUncompressed() uint64 {
	var total uint64
	for _, e := range i.Entries {
		total += e.UncompressedSize
	}
	return total
}

// Stat verifies that path points to an existing regular file.
// It returns an error with code FILE_NOT_FOUND when the file does not
// exist and INVALID_PATH when it exists but is not a regular file.
func Stat(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.ErrCodeFileNotFound, "no archive at %s", path)
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "stat %s", path)
	}
	if !fi.Mode().IsRegular() {
		return errors.New(errors.ErrCodeInvalidPath, "%s is not a regular file", path)
	}
	return nil
}

// Inspect opens the archive at path and lists its entries.
// Files that exist but are not valid zip archives yield an error with
// code INVALID_ARCHIVE.
func Inspect(path string) (*Info, error) {
	if err := Stat(path); err != nil {
		return nil, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "stat %s", path)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidArchive, err, "open archive %s", path)
	}
	defer r.Close()

	info := &Info{
		Path:    path,
		Size:    fi.Size(),
		Entries: make([]Entry, 0, len(r.File)),
	}
	for _, f := range r.File {
		info.Entries = append(info.Entries, Entry{
			Name:             f.Name,
			UncompressedSize: f.UncompressedSize64,
			CompressedSize:   f.CompressedSize64,
		})
	}
	sort.Slice(info.Entries, func(a, b int) bool {
		return info.Entries[a].Name < info.Entries[b].Name
	})

	return info, nil
}
