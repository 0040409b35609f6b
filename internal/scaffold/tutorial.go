// Package scaffold materializes the tutorial workspace: a nested monorepo with
// a root control interface and a second one inside libs/lib1, for trying the
// launcher by hand.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/NielsdaWheelz/aider-vertex/internal/errors"
	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
)

// Tutorial writes the tutorial tree into dir and commits it to a new git
// repository. It returns the absolute root.
//
// dir must not exist. If writing any file fails, the partial tree is removed.
// A git failure leaves the written tree in place and returns E_GIT_INIT_FAILED.
func Tutorial(fsys fs.FS, dir string) (string, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(errors.EScaffoldFailed, "failed to resolve tutorial directory", err)
	}

	if _, err := fsys.Stat(root); err == nil {
		return "", errors.NewWithDetails(errors.ETutorialExists,
			fmt.Sprintf("directory %s already exists", root),
			map[string]string{"path": root})
	} else if !fs.IsNotExist(err) {
		return "", errors.Wrap(errors.EScaffoldFailed, "failed to check tutorial directory", err)
	}

	if err := writeTree(fsys, root); err != nil {
		if rmErr := fs.SafeRemoveAll(root, filepath.Dir(root)); rmErr != nil {
			err = fmt.Errorf("%w (cleanup failed: %v)", err, rmErr)
		}
		return "", errors.WrapWithDetails(errors.EScaffoldFailed, "failed to write tutorial tree", err,
			map[string]string{"path": root})
	}

	if err := initRepo(root, time.Now()); err != nil {
		return root, errors.WrapWithDetails(errors.EGitInitFailed, "tutorial written but git init failed", err,
			map[string]string{"path": root})
	}
	return root, nil
}

func writeTree(fsys fs.FS, root string) error {
	for _, f := range tutorialFiles {
		path := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := fsys.WriteFile(path, []byte(f.Content), fileMode(f)); err != nil {
			return err
		}
	}
	return nil
}

func fileMode(f tutorialFile) os.FileMode {
	if f.Executable {
		return 0o755
	}
	return 0o644
}

// initRepo creates a repository at root and commits everything in it.
func initRepo(root string, now time.Time) error {
	repo, err := git.PlainInit(root, false)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("worktree: %w", err)
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("add: %w", err)
	}

	sig := &object.Signature{Name: "aider-vertex", Email: "aider-vertex@localhost", When: now}
	if _, err := wt.Commit("Initial commit", &git.CommitOptions{Author: sig, Committer: sig}); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
