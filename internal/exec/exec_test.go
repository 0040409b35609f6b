package exec

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRealRunner_CapturesOutput(t *testing.T) {
	cr := NewRealRunner()
	if _, err := cr.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	result, err := cr.Run(context.Background(), "sh", []string{"-c", "echo out; echo err >&2; exit 3"}, RunOpts{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
	if strings.TrimSpace(result.Stdout) != "out" {
		t.Errorf("Stdout = %q", result.Stdout)
	}
	if strings.TrimSpace(result.Stderr) != "err" {
		t.Errorf("Stderr = %q", result.Stderr)
	}
}

func TestRealRunner_Passthrough(t *testing.T) {
	cr := NewRealRunner()
	if _, err := cr.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	var stdout bytes.Buffer
	result, err := cr.Run(context.Background(), "sh", []string{"-c", "read line; echo \"$line\"; echo \"$AV_TEST\""}, RunOpts{
		Stdin:  strings.NewReader("in\n"),
		Stdout: &stdout,
		Env:    []string{"AV_TEST=set"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
	if stdout.String() != "in\nset\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "in\nset\n")
	}
	if result.Stdout != "" {
		t.Errorf("captured Stdout should be empty in passthrough mode, got %q", result.Stdout)
	}
}

func TestRealRunner_StartFailure(t *testing.T) {
	cr := NewRealRunner()
	result, err := cr.Run(context.Background(), "aider-vertex-definitely-missing", nil, RunOpts{})
	if err == nil {
		t.Fatal("expected error for missing executable")
	}
	if result.ExitCode != ExitStartFail {
		t.Errorf("ExitCode = %d, want %d", result.ExitCode, ExitStartFail)
	}
}

func TestRealRunner_LookPathMissing(t *testing.T) {
	if _, err := NewRealRunner().LookPath("aider-vertex-definitely-missing"); err == nil {
		t.Error("expected LookPath error")
	}
}

func TestRealRunner_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	res, err := NewRealRunner().Run(ctx, "sh", []string{"-c", "sleep 30"}, RunOpts{})
	if err == nil {
		t.Fatal("expected error from cancelled command")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
	if res.ExitCode != ExitStartFail {
		t.Errorf("ExitCode = %d, want %d", res.ExitCode, ExitStartFail)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("cancellation took %v", elapsed)
	}
}
