// Package ddd describes the on-disk layout of the project-local control
// interface (.ddd) that the build/verify daemon exposes to tooling.
//
// Layout:
//
//	<project>/.ddd/
//	    config.json      build/verify targets (JSONC)
//	    wait             daemon entry script
//	    ipc.lock         legacy lock (pre-run/ layout)
//	    run/
//	        ipc.lock     held while the daemon is mid-operation
//	        build.log    last build output
//
// This package only observes the layout. It never creates, writes or
// removes anything under .ddd.
package ddd

import "path/filepath"

// Fixed names within the interface directory.
const (
	DirName        = ".ddd"
	RunDirName     = "run"
	IPCLockName    = "ipc.lock"
	BuildLogName   = "build.log"
	LegacyLockName = "ipc.lock"
	ConfigName     = "config.json"
	WaitScriptName = "wait"
)

// Interface is a discovered control-interface directory.
type Interface struct {
	// Root is the project directory that contains .ddd.
	Root string

	// Path is the absolute path of the .ddd directory itself.
	Path string
}

// NewInterface returns the Interface for a project root.
func NewInterface(root string) *Interface {
	return &Interface{Root: root, Path: filepath.Join(root, DirName)}
}

// RunDir returns the run-state subdirectory.
func (i *Interface) RunDir() string {
	return filepath.Join(i.Path, RunDirName)
}

// IPCLockPath returns the current IPC lock path.
func (i *Interface) IPCLockPath() string {
	return filepath.Join(i.RunDir(), IPCLockName)
}

// BuildLogPath returns the build log path.
func (i *Interface) BuildLogPath() string {
	return filepath.Join(i.RunDir(), BuildLogName)
}

// LegacyLockPath returns the pre-migration lock path directly under .ddd.
func (i *Interface) LegacyLockPath() string {
	return filepath.Join(i.Path, LegacyLockName)
}

// ConfigPath returns the target configuration path.
func (i *Interface) ConfigPath() string {
	return filepath.Join(i.Path, ConfigName)
}
