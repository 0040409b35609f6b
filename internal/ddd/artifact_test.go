package ddd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
)

func TestStatArtifact_Absent(t *testing.T) {
	a, err := StatArtifact(fs.NewRealFS(), filepath.Join(t.TempDir(), "run", "ipc.lock"))
	if err != nil {
		t.Fatalf("StatArtifact: %v", err)
	}
	if a != nil {
		t.Fatalf("expected nil artifact, got %+v", a)
	}
	if a.ModTimePtr() != nil {
		t.Error("ModTimePtr of nil artifact should be nil")
	}
}

func TestStatArtifact_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "run"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	a, err := StatArtifact(fs.NewRealFS(), filepath.Join(dir, "run", "ipc.lock"))
	if err != nil {
		t.Fatalf("StatArtifact: %v", err)
	}
	if a != nil {
		t.Fatalf("expected nil artifact, got %+v", a)
	}
}

func TestStatArtifact_Present(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ipc.lock")
	if err := os.WriteFile(path, []byte("123"), 0644); err != nil {
		t.Fatal(err)
	}
	mtime := time.Now().Add(-10 * time.Minute).Truncate(time.Second)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	a, err := StatArtifact(fs.NewRealFS(), path)
	if err != nil {
		t.Fatalf("StatArtifact: %v", err)
	}
	if a == nil {
		t.Fatal("expected artifact")
	}
	if !a.ModTime.Equal(mtime) {
		t.Errorf("ModTime = %v, want %v", a.ModTime, mtime)
	}
	if a.Size != 3 {
		t.Errorf("Size = %d, want 3", a.Size)
	}
	if p := a.ModTimePtr(); p == nil || !p.Equal(mtime) {
		t.Errorf("ModTimePtr = %v", p)
	}
}

func TestStatArtifact_ProbeError(t *testing.T) {
	fsys := statErrFS{FS: fs.NewRealFS(), failPath: "/x/ipc.lock", err: os.ErrPermission}
	a, err := StatArtifact(fsys, "/x/ipc.lock")
	if err == nil {
		t.Fatal("expected error")
	}
	if a != nil {
		t.Errorf("expected nil artifact on error, got %+v", a)
	}
}
