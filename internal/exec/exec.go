// Package exec runs external commands for aider-vertex.
package exec

import (
	"bytes"
	"context"
	"errors"
	"io"
	osexec "os/exec"
	"syscall"
	"time"
)

// ExitStartFail is the exit code reported when a command could not be started.
const ExitStartFail = -1

// cancelGrace is how long a cancelled command gets after SIGTERM before it
// is killed.
const cancelGrace = 5 * time.Second

// RunOpts configures a single command invocation.
type RunOpts struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env is the full environment. Nil inherits the parent's environment.
	Env []string

	// Stdin, Stdout and Stderr, when set, are wired directly to the child
	// and the corresponding CmdResult field stays empty.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CmdResult is the outcome of a command that started.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner runs commands and resolves executables.
//
// Run returns an error only when the command could not be started or was
// stopped by ctx; a non-zero exit is reported through CmdResult.ExitCode.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)
	LookPath(file string) (string, error)
}

// RealRunner implements CommandRunner with os/exec.
type RealRunner struct{}

// NewRealRunner returns a CommandRunner backed by os/exec.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

func (*RealRunner) LookPath(file string) (string, error) {
	return osexec.LookPath(file)
}

func (*RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Cancel = func() error { return cmd.Process.Signal(syscall.SIGTERM) }
	cmd.WaitDelay = cancelGrace
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env
	cmd.Stdin = opts.Stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if opts.Stdout != nil {
		cmd.Stdout = opts.Stdout
	}
	cmd.Stderr = &stderr
	if opts.Stderr != nil {
		cmd.Stderr = opts.Stderr
	}

	err := cmd.Run()
	result := CmdResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = ExitStartFail
		return result, ctxErr
	}

	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		if result.ExitCode >= 0 {
			return result, nil
		}
		// Killed by a signal.
		return result, err
	}

	result.ExitCode = ExitStartFail
	return result, err
}
