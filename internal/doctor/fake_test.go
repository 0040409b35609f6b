package doctor

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/NielsdaWheelz/aider-vertex/internal/config"
)

// fakeFS is an in-memory fs.FS for driving the checks.
type fakeFS struct {
	entries     map[string]fakeInfo
	readOnly    map[string]bool
	statErr     map[string]error
	writableErr map[string]error
	panicOnStat string
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		entries:     map[string]fakeInfo{},
		readOnly:    map[string]bool{},
		statErr:     map[string]error{},
		writableErr: map[string]error{},
	}
}

func (f *fakeFS) dir(path string) *fakeFS {
	f.entries[path] = fakeInfo{name: filepath.Base(path), dir: true, modTime: time.Unix(0, 0)}
	return f
}

func (f *fakeFS) file(path string, modTime time.Time) *fakeFS {
	f.entries[path] = fakeInfo{name: filepath.Base(path), modTime: modTime}
	return f
}

func (f *fakeFS) Stat(path string) (os.FileInfo, error) {
	if path == f.panicOnStat {
		panic("stat exploded: " + path)
	}
	if err, ok := f.statErr[path]; ok {
		return nil, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	info, ok := f.entries[path]
	if !ok {
		return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
	}
	return info, nil
}

func (f *fakeFS) ReadFile(path string) ([]byte, error) {
	return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
}

func (f *fakeFS) WriteFile(path string, _ []byte, _ os.FileMode) error {
	return &os.PathError{Op: "open", Path: path, Err: os.ErrPermission}
}

func (f *fakeFS) MkdirAll(path string, _ os.FileMode) error {
	return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrPermission}
}

func (f *fakeFS) MkdirTemp(dir, _ string) (string, error) {
	return "", &os.PathError{Op: "mkdirtemp", Path: dir, Err: os.ErrPermission}
}

func (f *fakeFS) Writable(path string) (bool, error) {
	if err, ok := f.writableErr[path]; ok {
		return false, err
	}
	if _, ok := f.entries[path]; !ok {
		return false, &os.PathError{Op: "access", Path: path, Err: os.ErrNotExist}
	}
	return !f.readOnly[path], nil
}

type fakeInfo struct {
	name    string
	dir     bool
	modTime time.Time
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) ModTime() time.Time { return i.modTime }
func (i fakeInfo) IsDir() bool        { return i.dir }
func (i fakeInfo) Sys() any           { return nil }

func (i fakeInfo) Mode() os.FileMode {
	if i.dir {
		return os.ModeDir | 0o755
	}
	return 0o644
}

// lookPathFor resolves only the named tools.
func lookPathFor(present ...string) func(string) (string, error) {
	set := map[string]bool{}
	for _, p := range present {
		set[p] = true
	}
	return func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const (
	workDir   = "/work/proj"
	dddDir    = "/work/proj/.ddd"
	credsPath = "/keys/sa.json"
)

// healthyEnv is an environment snapshot that passes every env-driven check.
func healthyEnv() config.Env {
	return config.Env{
		CredentialsPath: credsPath,
		Project:         "my-project",
		Location:        "us-central1",
		WorkDir:         workDir,
	}
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return fixedNow }
	return opts
}
