package ddd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
)

// mkdirs creates each relative path under root.
func mkdirs(t *testing.T, root string, rels ...string) {
	t.Helper()
	for _, rel := range rels {
		if err := os.MkdirAll(filepath.Join(root, rel), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
	}
}

func TestDiscover(t *testing.T) {
	tests := []struct {
		name     string
		dirs     []string
		start    string
		depth    int
		wantRoot string // relative to the temp root; "" means not found
	}{
		{
			name:     "in start directory",
			dirs:     []string{"proj/.ddd"},
			start:    "proj",
			depth:    3,
			wantRoot: "proj",
		},
		{
			name:     "three levels up",
			dirs:     []string{"proj/.ddd", "proj/a/b/c"},
			start:    "proj/a/b/c",
			depth:    3,
			wantRoot: "proj",
		},
		{
			name:     "four levels up is out of range",
			dirs:     []string{"proj/.ddd", "proj/a/b/c/d"},
			start:    "proj/a/b/c/d",
			depth:    3,
			wantRoot: "",
		},
		{
			name:     "closest wins",
			dirs:     []string{"proj/.ddd", "proj/libs/lib1/.ddd", "proj/libs/lib1/src"},
			start:    "proj/libs/lib1/src",
			depth:    3,
			wantRoot: "proj/libs/lib1",
		},
		{
			name:     "depth zero only checks start",
			dirs:     []string{"proj/.ddd", "proj/sub"},
			start:    "proj/sub",
			depth:    0,
			wantRoot: "",
		},
		{
			name:     "none anywhere",
			dirs:     []string{"proj/sub"},
			start:    "proj/sub",
			depth:    3,
			wantRoot: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			mkdirs(t, root, tt.dirs...)

			iface, err := Discover(fs.NewRealFS(), filepath.Join(root, tt.start), tt.depth)
			if err != nil {
				t.Fatalf("Discover: %v", err)
			}

			if tt.wantRoot == "" {
				if iface != nil {
					t.Fatalf("expected no interface, got %+v", iface)
				}
				return
			}
			if iface == nil {
				t.Fatal("expected an interface, got nil")
			}
			wantRoot := filepath.Join(root, tt.wantRoot)
			if iface.Root != wantRoot {
				t.Errorf("Root = %q, want %q", iface.Root, wantRoot)
			}
			if iface.Path != filepath.Join(wantRoot, DirName) {
				t.Errorf("Path = %q", iface.Path)
			}
		})
	}
}

func TestDiscover_FileNamedDDDIgnored(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "proj/.ddd", "proj/sub")
	if err := os.WriteFile(filepath.Join(root, "proj/sub", DirName), []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}

	iface, err := Discover(fs.NewRealFS(), filepath.Join(root, "proj/sub"), 3)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if iface == nil || iface.Root != filepath.Join(root, "proj") {
		t.Fatalf("expected proj interface, got %+v", iface)
	}
}

// statErrFS fails Stat for one path and delegates everything else.
type statErrFS struct {
	fs.FS
	failPath string
	err      error
}

func (f statErrFS) Stat(path string) (os.FileInfo, error) {
	if path == f.failPath {
		return nil, f.err
	}
	return f.FS.Stat(path)
}

func TestDiscover_ProbeErrorKeptWhenFartherLevelMatches(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "proj/.ddd", "proj/sub")
	fsys := statErrFS{
		FS:       fs.NewRealFS(),
		failPath: filepath.Join(root, "proj/sub", DirName),
		err:      os.ErrPermission,
	}

	iface, err := Discover(fsys, filepath.Join(root, "proj/sub"), 3)
	if iface == nil || iface.Root != filepath.Join(root, "proj") {
		t.Fatalf("expected proj interface, got %+v", iface)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("err = %v, want the permission error from the nearer level", err)
	}
}

func TestDiscover_RelativeStartRejected(t *testing.T) {
	iface, err := Discover(fs.NewRealFS(), "proj/sub", 3)
	if err == nil {
		t.Fatal("expected error for relative start")
	}
	if iface != nil {
		t.Fatalf("expected nil interface, got %+v", iface)
	}
}

func TestDiscover_ProbeErrorReportedWhenNothingFound(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "proj")
	fsys := statErrFS{
		FS:       fs.NewRealFS(),
		failPath: filepath.Join(root, "proj", DirName),
		err:      os.ErrPermission,
	}

	iface, err := Discover(fsys, filepath.Join(root, "proj"), 0)
	if iface != nil {
		t.Fatalf("expected nil interface, got %+v", iface)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("err = %v, want permission error", err)
	}
}

func TestInterfacePaths(t *testing.T) {
	iface := NewInterface("/work/proj")

	tests := map[string]string{
		"RunDir":         iface.RunDir(),
		"IPCLockPath":    iface.IPCLockPath(),
		"BuildLogPath":   iface.BuildLogPath(),
		"LegacyLockPath": iface.LegacyLockPath(),
		"ConfigPath":     iface.ConfigPath(),
	}
	want := map[string]string{
		"RunDir":         "/work/proj/.ddd/run",
		"IPCLockPath":    "/work/proj/.ddd/run/ipc.lock",
		"BuildLogPath":   "/work/proj/.ddd/run/build.log",
		"LegacyLockPath": "/work/proj/.ddd/ipc.lock",
		"ConfigPath":     "/work/proj/.ddd/config.json",
	}
	for name, got := range tests {
		if got != want[name] {
			t.Errorf("%s = %q, want %q", name, got, want[name])
		}
	}
}
