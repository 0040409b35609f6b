package ddd

import (
	"fmt"
	"time"

	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
)

// Artifact is one observation of a runtime artifact owned by the daemon.
// The daemon may remove it at any moment; callers treat the value as a
// point-in-time snapshot.
type Artifact struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// StatArtifact observes path. It returns (nil, nil) when the artifact does not
// exist, including when it vanishes between checks.
func StatArtifact(fsys fs.FS, path string) (*Artifact, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if fs.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return &Artifact{Path: path, ModTime: info.ModTime(), Size: info.Size()}, nil
}

// ModTimePtr returns a pointer to the artifact's modification time, or nil
// for an absent artifact.
func (a *Artifact) ModTimePtr() *time.Time {
	if a == nil {
		return nil
	}
	t := a.ModTime
	return &t
}
