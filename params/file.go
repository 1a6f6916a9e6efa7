package params

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// InputFile is an upload source: a path on disk or an already open reader.
type InputFile struct {
	Path   string
	Name   string
	reader io.Reader
}

func FileFromPath(path string) *InputFile {
	return &InputFile{
		Path:   path,
		Name:   filepath.Base(path),
		reader: nil,
	}
}

func FileFromReader(name string, r io.Reader) *InputFile {
	return &InputFile{
		Path:   "",
		Name:   name,
		reader: r,
	}
}

// Open returns the file contents. The caller closes the returned reader;
// closing a reader-backed file leaves the original reader open.
func (f *InputFile) Open() (io.ReadCloser, error) {
	if f.reader != nil {
		return io.NopCloser(f.reader), nil
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParam, err)
	}

	return file, nil
}
