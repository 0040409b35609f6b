// Package doctor implements the launcher's readiness verifier.
//
// Verify runs a fixed sequence of independent checks against an environment
// snapshot and the filesystem, collects their findings in order, and folds
// them into a verdict. Probes are read-only; nothing is ever written into the
// control-interface directory.
package doctor

import "fmt"

// Severity classifies a finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityBlocking
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityBlocking:
		return "blocking"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Tag is the short report label for the severity.
func (s Severity) Tag() string {
	switch s {
	case SeverityBlocking:
		return "FAIL"
	case SeverityWarning:
		return "WARN"
	default:
		return "INFO"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "info":
		*s = SeverityInfo
	case "warning":
		*s = SeverityWarning
	case "blocking":
		*s = SeverityBlocking
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}

// Check names, as they appear in findings.
const (
	CheckCredentials       = "credentials"
	CheckVertexConfig      = "vertex_config"
	CheckToolchain         = "toolchain"
	CheckInterface         = "interface"
	CheckInterfaceWritable = "interface_writable"
	CheckLegacyLock        = "legacy_lock"
	CheckIPCLock           = "ipc_lock"
	CheckBuildLog          = "build_log"
	CheckGitBridge         = "git_bridge"
)

// Finding is one unit of verifier output.
type Finding struct {
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Hint     string   `json:"hint,omitempty"`
}

// Blocking returns a finding that makes the verdict unhealthy.
func Blocking(check, message, hint string) Finding {
	return Finding{Check: check, Severity: SeverityBlocking, Message: message, Hint: hint}
}

// Warning returns a degraded-but-operable finding.
func Warning(check, message, hint string) Finding {
	return Finding{Check: check, Severity: SeverityWarning, Message: message, Hint: hint}
}

// Info returns a status-only finding.
func Info(check, message string) Finding {
	return Finding{Check: check, Severity: SeverityInfo, Message: message}
}

// Verdict is the aggregate outcome of a run.
type Verdict string

const (
	VerdictHealthy   Verdict = "healthy"
	VerdictUnhealthy Verdict = "unhealthy"
)

// Healthy reports whether v is VerdictHealthy.
func (v Verdict) Healthy() bool {
	return v == VerdictHealthy
}

// Fold reduces findings to a verdict: unhealthy iff any finding is blocking.
func Fold(findings []Finding) Verdict {
	for _, f := range findings {
		if f.Severity == SeverityBlocking {
			return VerdictUnhealthy
		}
	}
	return VerdictHealthy
}
