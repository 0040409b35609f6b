// Package fs provides filesystem access for aider-vertex behind a small
// interface so probes can be faked in tests.
package fs

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// FS is the subset of filesystem operations aider-vertex performs.
type FS interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	MkdirTemp(dir, pattern string) (string, error)

	// Writable reports whether the current process may create entries in
	// path. It never writes anything.
	Writable(path string) (bool, error)
}

// RealFS implements FS against the host filesystem.
type RealFS struct{}

// NewRealFS returns an FS backed by the os package.
func NewRealFS() *RealFS {
	return &RealFS{}
}

func (*RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (*RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (*RealFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (*RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (*RealFS) MkdirTemp(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}

// Writable asks the kernel via access(2) with W_OK. EACCES and EROFS mean
// "not writable"; any other failure is returned as an error.
func (*RealFS) Writable(path string) (bool, error) {
	err := unix.Access(path, unix.W_OK)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EROFS), errors.Is(err, unix.EPERM):
		return false, nil
	default:
		return false, &os.PathError{Op: "access", Path: path, Err: err}
	}
}

// IsNotExist reports whether err means the path is absent. A path component
// that is a regular file (ENOTDIR) counts as absent too.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, unix.ENOTDIR)
}
