package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vgcpu/vgbench"
)

// WriteJSON serializes r as indented JSON to w, schema_version first.
func WriteJSON(w io.Writer, r vgbench.RunReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSONReport(r)); err != nil {
		return fmt.Errorf("report: encode JSON: %w", err)
	}
	return nil
}

// WriteJSONFile writes r as JSON to path, creating any missing parent
// directories first.
func WriteJSONFile(path string, r vgbench.RunReport) error {
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
	return WriteJSON(f, r)
}
