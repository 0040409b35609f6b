// Package testutil holds helpers shared by package tests.
package testutil

import (
	"fmt"
	"os"
)

// gitEnv are git variables that can redirect repository paths.
var gitEnv = []string{
	"GIT_DIR",
	"GIT_WORK_TREE",
	"GIT_COMMON_DIR",
	"GIT_INDEX_FILE",
	"GIT_OBJECT_DIRECTORY",
	"GIT_ALTERNATE_OBJECT_DIRECTORIES",
}

// launcherEnv are variables the readiness checks and tunables read.
var launcherEnv = []string{
	"GOOGLE_APPLICATION_CREDENTIALS",
	"VERTEXAI_PROJECT",
	"VERTEXAI_LOCATION",
	"AIDER_VERTEX_LOCK_STALE_AFTER",
	"AIDER_VERTEX_SEARCH_DEPTH",
	"AIDER_VERTEX_REQUIRED_TOOLS",
	"AIDER_VERTEX_VIEW_PREFIX",
	"AIDER_VERTEX_WRAPPED",
	"AIDER_VERTEX_MODEL",
	"AIDER_VERTEX_DEBUG",
}

// UnsetLauncherEnv clears git variables plus everything the launcher reads
// from the environment, so tests start from a known-empty snapshot.
func UnsetLauncherEnv() error {
	if err := unsetAll(gitEnv); err != nil {
		return err
	}
	return unsetAll(launcherEnv)
}

func unsetAll(names []string) error {
	for _, name := range names {
		if err := os.Unsetenv(name); err != nil {
			return fmt.Errorf("unset %s: %w", name, err)
		}
	}
	return nil
}
