package confinit

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned, wrapped, when a format name does not match
// any registered Format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// A DirCreateError indicates that a directory or one of its ancestors could
// not be created.
type DirCreateError struct {
	Path string
	Err  error
}

func (e *DirCreateError) Error() string {
	return fmt.Sprintf("%s: cannot create directory: %v", e.Path, e.Err)
}

func (e *DirCreateError) Unwrap() error {
	return e.Err
}

// A SerializeError indicates that a value could not be encoded in the
// requested format.
type SerializeError struct {
	Format string
	Err    error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("cannot serialize as %s: %v", e.Format, e.Err)
}

func (e *SerializeError) Unwrap() error {
	return e.Err
}

// A WriteError indicates that the serialized contents could not be written to
// the target path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: cannot write: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
