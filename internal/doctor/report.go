package doctor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// checkColumn is wide enough for the longest check name.
const checkColumn = len(CheckInterfaceWritable)

type tagStyles struct {
	fail, warn, info lipgloss.Style
}

func newTagStyles(w io.Writer) tagStyles {
	re := lipgloss.NewRenderer(w)
	return tagStyles{
		fail: re.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		warn: re.NewStyle().Foreground(lipgloss.Color("11")),
		info: re.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

func (s tagStyles) render(sev Severity) string {
	tag := "[" + sev.Tag() + "]"
	switch sev {
	case SeverityBlocking:
		return s.fail.Render(tag)
	case SeverityWarning:
		return s.warn.Render(tag)
	default:
		return s.info.Render(tag)
	}
}

// WriteText writes the human-readable report: one line per finding, an
// optional hint line beneath it, then the verdict. Tags are coloured only when
// w is a terminal that supports it.
func WriteText(w io.Writer, rep Report) error {
	styles := newTagStyles(w)

	for _, f := range rep.Findings {
		if _, err := fmt.Fprintf(w, "%s  %-*s  %s\n", styles.render(f.Severity), checkColumn, f.Check, f.Message); err != nil {
			return err
		}
		if f.Hint != "" {
			if _, err := fmt.Fprintf(w, "        %-*s  hint: %s\n", checkColumn, "", f.Hint); err != nil {
				return err
			}
		}
	}
	if len(rep.Findings) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "status: %s\n", rep.Verdict)
	return err
}

// jsonReport is the machine-readable report.
type jsonReport struct {
	OK           bool      `json:"ok"`
	Verdict      Verdict   `json:"verdict"`
	InterfaceDir string    `json:"interface_dir,omitempty"`
	Findings     []Finding `json:"findings"`
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, rep Report) error {
	out := jsonReport{
		OK:       rep.Verdict.Healthy(),
		Verdict:  rep.Verdict,
		Findings: rep.Findings,
	}
	if out.Findings == nil {
		out.Findings = []Finding{}
	}
	if rep.Interface != nil {
		out.InterfaceDir = rep.Interface.Path
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
