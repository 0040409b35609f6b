package ddd

import (
	"fmt"
	"path/filepath"

	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
)

// Discover looks for a .ddd directory in start and then in at most depth
// ancestors, nearest first. start must be absolute. It returns (nil, nil)
// when none is found.
//
// A probe error on one level does not stop the walk. The first such error is
// returned alongside whatever the walk found, so a caller can report that a
// nearer interface may have been skipped.
func Discover(fsys fs.FS, start string, depth int) (*Interface, error) {
	if !filepath.IsAbs(start) {
		return nil, fmt.Errorf("interface search needs an absolute start directory, got %q", start)
	}
	dir := filepath.Clean(start)

	var probeErr error
	for level := 0; level <= depth; level++ {
		candidate := filepath.Join(dir, DirName)
		info, err := fsys.Stat(candidate)
		switch {
		case err == nil && info.IsDir():
			return NewInterface(dir), probeErr
		case err != nil && !fs.IsNotExist(err) && probeErr == nil:
			probeErr = fmt.Errorf("stat %s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, probeErr
}
