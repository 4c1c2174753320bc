// Package confinit writes default configuration files.
//
// confinit is a thin provisioning layer in front of existing serialization
// codecs: given a serializable value, a target path, and a Format, it ensures
// that the target's parent directories exist and, if no file exists at the
// target, writes the value there encoded in that format. A pre-existing file
// is authoritative and is never inspected, merged, or overwritten; finding one
// is the expected steady state after the first successful call, and is
// reported as success.
package confinit

import (
	"os"
	"path/filepath"

	"github.com/google/renameio"
	vfs "github.com/twpayne/go-vfs"
)

// Default permissions for created files and directories, before umask.
const (
	DefaultDirPerm  = os.FileMode(0o755)
	DefaultFilePerm = os.FileMode(0o644)
)

type options struct {
	atomicWrite bool
	keyCase     KeyCase
	perm        os.FileMode
}

// An Option sets an option on a call to WriteDefault.
type Option func(*options)

// WithAtomicWrite writes the file via a temporary file and rename instead of a
// plain write. Only meaningful on the host filesystem: the temporary file is
// created with the os package directly.
func WithAtomicWrite() Option {
	return func(o *options) {
		o.atomicWrite = true
	}
}

// WithKeyCase converts map keys to keyCase before encoding.
func WithKeyCase(keyCase KeyCase) Option {
	return func(o *options) {
		o.keyCase = keyCase
	}
}

// WithPerm sets the permissions of the created file.
func WithPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// EnsureDir ensures that the directory dir and all of its missing ancestors
// exist, creating them with permissions perm. It is idempotent: if dir already
// exists then it does nothing and returns nil.
func EnsureDir(fs vfs.FS, dir string, perm os.FileMode) error {
	if err := vfs.MkdirAll(fs, dir, perm); err != nil {
		return &DirCreateError{
			Path: dir,
			Err:  err,
		}
	}
	return nil
}

// WriteDefault writes data to path encoded with format, unless a file already
// exists at path, in which case it does nothing and returns nil. Missing
// parent directories of path are created first.
//
// The existence check and the write are separate steps. Two concurrent callers
// can both observe an absent file and both write, with the last write winning;
// callers that need mutual exclusion must serialize calls externally.
func WriteDefault(fs vfs.FS, path string, data interface{}, format Format, opts ...Option) error {
	o := options{
		perm: DefaultFilePerm,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := EnsureDir(fs, filepath.Dir(path), DefaultDirPerm); err != nil {
		return err
	}

	switch _, err := fs.Stat(path); {
	case err == nil:
		return nil
	case !os.IsNotExist(err):
		return &WriteError{
			Path: path,
			Err:  err,
		}
	}

	if o.keyCase != "" {
		data = o.keyCase.apply(data)
	}

	contents, err := format.Marshal(data)
	if err != nil {
		return &SerializeError{
			Format: format.Name(),
			Err:    err,
		}
	}

	if o.atomicWrite {
		err = renameio.WriteFile(path, contents, o.perm)
	} else {
		err = fs.WriteFile(path, contents, o.perm)
	}
	if err != nil {
		return &WriteError{
			Path: path,
			Err:  err,
		}
	}
	return nil
}
