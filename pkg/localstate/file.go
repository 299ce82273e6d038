package localstate

import (
	"io"
	"io/fs"
	"os"

	"github.com/pkg/errors"
)

// Load reads and parses the Local State file at path without keeping it open.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(ErrNotFound, path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading local state")
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return doc, nil
}

// File is a Local State file held open for reading and writing, so that
// the document can be loaded and later written back through the same handle.
type File struct {
	f *os.File
}

// Open opens the Local State file at path for reading and writing and
// parses its contents. The caller must Close the returned File.
func Open(path string) (*File, *Document, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, errors.Wrap(ErrNotFound, path)
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening local state")
	}

	data, err := io.ReadAll(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, errors.Wrap(err, "reading local state")
	}
	doc, err := Parse(data)
	if err != nil {
		_ = f.Close()
		return nil, nil, errors.Wrap(err, path)
	}
	return &File{f: f}, doc, nil
}

// Name returns the path of the file.
func (f *File) Name() string {
	return f.f.Name()
}

// Save overwrites the file with the indented rendering of doc, truncating
// whatever was left over from the previous contents.
func (f *File) Save(doc *Document) error {
	if _, err := f.f.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "seeking local state")
	}
	n, err := f.f.Write(doc.Indented())
	if err != nil {
		return errors.Wrap(err, "writing local state")
	}
	if err := f.f.Truncate(int64(n)); err != nil {
		return errors.Wrap(err, "truncating local state")
	}
	return f.f.Sync()
}

func (f *File) Close() error {
	return f.f.Close()
}
