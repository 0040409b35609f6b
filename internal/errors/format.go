// Package errors provides error formatting for aider-vertex CLI output.
package errors

import (
	"errors"
	"io"
	"sort"
	"strings"
)

// PrintOptions controls error output formatting.
type PrintOptions struct {
	// Verbose enables detailed error output with more context keys.
	Verbose bool
}

// Context key whitelist (default mode, in display order)
var defaultContextKeys = []string{
	"op",
	"check",
	"interface_dir",
	"path",
	"tool",
	"exit_code",
	"blocking",
	"warnings",
}

// Additional context keys for verbose mode
var verboseContextKeys = []string{
	"op",
	"check",
	"interface_dir",
	"path",
	"dir",
	"tool",
	"args",
	"exit_code",
	"signal",
	"blocking",
	"warnings",
	"env",
	"hint",
}

const (
	maxValueLen      = 256 // Max chars for single-line context values
	maxExtraValueLen = 128 // Max chars for extra section values
)

// Format formats an error for display without I/O.
func Format(err error, opts PrintOptions) string {
	if err == nil {
		return ""
	}

	var ec *ExitCodeError
	if errors.As(err, &ec) && ec.Err == nil {
		return ""
	}

	var sb strings.Builder

	le, ok := AsLauncherError(err)
	if !ok {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("error_code: ")
	sb.WriteString(string(le.Code))
	sb.WriteString("\n")
	sb.WriteString(le.Msg)
	sb.WriteString("\n")
	if opts.Verbose && le.Cause != nil {
		sb.WriteString("cause: ")
		sb.WriteString(sanitizeValue(le.Cause.Error(), maxValueLen))
		sb.WriteString("\n")
	}

	contextKeys := defaultContextKeys
	if opts.Verbose {
		contextKeys = verboseContextKeys
	}

	printedKeys := make(map[string]bool)
	wroteContext := false
	for _, key := range contextKeys {
		if le.Details == nil || key == "hint" {
			continue
		}
		val, ok := le.Details[key]
		if !ok || val == "" {
			continue
		}
		if !wroteContext {
			sb.WriteString("\n")
			wroteContext = true
		}
		printedKeys[key] = true
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(sanitizeValue(val, maxValueLen))
		sb.WriteString("\n")
	}

	// In verbose mode, print remaining keys under extra:
	if opts.Verbose && le.Details != nil {
		var extraKeys []string
		for key, val := range le.Details {
			if !printedKeys[key] && key != "hint" && val != "" {
				extraKeys = append(extraKeys, key)
			}
		}
		if len(extraKeys) > 0 {
			sort.Strings(extraKeys)
			sb.WriteString("\nextra:\n")
			for _, key := range extraKeys {
				sb.WriteString("  ")
				sb.WriteString(key)
				sb.WriteString(": ")
				sb.WriteString(sanitizeValue(le.Details[key], maxExtraValueLen))
				sb.WriteString("\n")
			}
		}
	}

	if hint := GetHint(err); hint != "" {
		sb.WriteString("\n")
		sb.WriteString(FormatHint(hint))
		sb.WriteString("\n")
	}

	for _, try := range deriveTryLines(le) {
		sb.WriteString("try: ")
		sb.WriteString(try)
		sb.WriteString("\n")
	}

	return sb.String()
}

// PrintWithOptions writes a formatted error to w with the given options.
func PrintWithOptions(w io.Writer, err error, opts PrintOptions) {
	if err == nil {
		return
	}
	_, _ = io.WriteString(w, Format(err, opts))
}

// sanitizeValue flattens a value onto one line:
// trailing whitespace trimmed, CRLF normalized, newlines escaped, truncated to maxLen.
func sanitizeValue(val string, maxLen int) string {
	val = strings.TrimRight(val, " \t\r\n")
	val = strings.ReplaceAll(val, "\r\n", "\n")
	val = strings.ReplaceAll(val, "\n", "\\n")
	if len(val) > maxLen {
		return val[:maxLen] + "…"
	}
	return val
}

// deriveTryLines returns actionable suggestions based on error code.
func deriveTryLines(le *LauncherError) []string {
	if le == nil {
		return nil
	}

	var lines []string

	switch le.Code {
	case EUnhealthy:
		lines = append(lines, "aider-vertex doctor")
	case ENotInteractive:
		lines = append(lines, "aider-vertex --vertex-yes <args>")
	case EWrappedNotFound:
		lines = append(lines, "python -m pip install aider-chat")
	case ETutorialExists:
		lines = append(lines, "aider-vertex tutorial --dir <empty-dir>")
	}

	return lines
}

// FormatHint formats a hint for output.
// If hint already starts with "hint:", returns as-is.
// Otherwise prepends "hint: ".
func FormatHint(hint string) string {
	if hint == "" {
		return ""
	}
	if strings.HasPrefix(hint, "hint:") {
		return hint
	}
	return "hint: " + hint
}

// GetHint extracts the hint from an error's details, if present.
func GetHint(err error) string {
	le, ok := AsLauncherError(err)
	if !ok || le.Details == nil {
		return ""
	}
	return le.Details["hint"]
}
