package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vgcpu/vgbench"
)

var csvHeader = []string{
	"backend_id", "scene_id", "scene_hash", "width", "height", "decision",
	"wall_p50_ns", "wall_p90_ns", "cpu_p50_ns", "cpu_p90_ns", "sample_count",
}

// WriteCSV writes r to w as CSV: a leading "# schema_version=..." comment
// line, then the fixed header row, then one row per case, matching
// original_source's csv_writer.cpp layout.
func WriteCSV(w io.Writer, r vgbench.RunReport) error {
	if _, err := fmt.Fprintf(w, "# schema_version=%s\n", SchemaVersion); err != nil {
		return fmt.Errorf("report: write CSV comment: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("report: write CSV header: %w", err)
	}
	for _, c := range r.Cases {
		row := []string{
			c.BackendName,
			c.SceneName,
			c.SceneHash,
			strconv.Itoa(c.Width),
			strconv.Itoa(c.Height),
			decisionString(c.Decision),
			strconv.FormatInt(int64(c.Timing.WallP50), 10),
			strconv.FormatInt(int64(c.Timing.WallP90), 10),
			strconv.FormatInt(int64(c.Timing.CPUP50), 10),
			strconv.FormatInt(int64(c.Timing.CPUP90), 10),
			strconv.Itoa(c.Timing.Samples),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write CSV row for %s/%s: %w", c.BackendName, c.SceneName, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes r to path as CSV, creating any missing parent
// directories first.
func WriteCSVFile(path string, r vgbench.RunReport) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("report: mkdir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(f, r)
}
