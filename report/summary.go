package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/vgcpu/vgbench"
)

// WriteSummary prints a human-readable table of r to w: Backend | Scene |
// Status | Wall p50 (ms) | CPU p50 (ms). Non-Execute rows show their
// reasons in the Status column and "-" for the timings. Rendered via pterm's table printer, which
// falls back to plain fixed-width text automatically when w is not a
// terminal.
func WriteSummary(w io.Writer, r vgbench.RunReport) error {
	rows := pterm.TableData{
		{"Backend", "Scene", "Status", "Wall p50 (ms)", "CPU p50 (ms)"},
	}
	for _, c := range r.Cases {
		wallCol, cpuCol := "-", "-"
		status := c.Decision.String()
		if c.Decision == vgbench.DecisionExecute {
			wallCol = formatMS(c.Timing.WallP50)
			cpuCol = formatMS(c.Timing.CPUP50)
		} else if len(c.Reasons) > 0 {
			status = fmt.Sprintf("%s (%s)", status, strings.Join(c.Reasons, "; "))
		}
		rows = append(rows, []string{c.BackendName, c.SceneName, status, wallCol, cpuCol})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(rows)
	rendered, err := table.Srender()
	if err != nil {
		return fmt.Errorf("report: render summary table: %w", err)
	}
	if _, err := fmt.Fprintln(w, rendered); err != nil {
		return fmt.Errorf("report: write summary: %w", err)
	}
	return nil
}

func formatMS(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d)/float64(time.Millisecond))
}
