package artifact

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer implements vgbench.ArtifactWriter: it writes rendered frames as
// PNGs under OutputDir and, when GoldenDir is set, compares each frame
// against a same-named golden PNG via SSIM.
type Writer struct {
	OutputDir string
	GoldenDir string
}

// Write encodes rgba as a PNG under OutputDir, creating the directory if
// needed, and returns the path written.
func (w *Writer) Write(sceneName, backendName string, width, height int, rgba []byte) (string, error) {
	if w.OutputDir == "" {
		return "", fmt.Errorf("artifact: OutputDir not configured")
	}
	if err := os.MkdirAll(w.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("artifact: mkdir %s: %w", w.OutputDir, err)
	}
	path := filepath.Join(w.OutputDir, Path(sceneName, backendName, ".png"))
	if err := WriteFile(path, width, height, rgba); err != nil {
		return "", err
	}
	return path, nil
}

// ssimPassThreshold is the minimum score a computed SSIM comparison must
// reach to count as passed.
const ssimPassThreshold = 0.99

// CompareGolden loads GoldenDir/<sanitized-name>.png, if present, and
// compares it against rgba by SSIM. It distinguishes three outcomes:
// no golden image to compare against (ok=false, a golden-missing
// message, no score); a golden image whose dimensions don't match
// (ok=true, passed=false, a dimension-mismatch message, no score); and
// a computed score (ok=true, passed = score >= 0.99). ok is false only
// when GoldenDir is unset or no golden image exists for this case —
// that is not an error, just "nothing to compare against".
func (w *Writer) CompareGolden(sceneName, backendName string, width, height int, rgba []byte) (score float64, goldenPath string, passed bool, message string, ok bool) {
	if w.GoldenDir == "" {
		return 0, "", false, "", false
	}
	path := filepath.Join(w.GoldenDir, Path(sceneName, backendName, ".png"))
	golden, gw, gh, err := DecodeFile(path)
	if err != nil {
		return 0, "", false, "Golden image not found", false
	}
	if gw != width || gh != height {
		return 0, path, false, "Dimension mismatch", true
	}
	s, err := SSIM(rgba, golden, width, height)
	if err != nil {
		return 0, path, false, fmt.Sprintf("SSIM computation failed: %v", err), true
	}
	passed = s >= ssimPassThreshold
	msg := fmt.Sprintf("SSIM score %.4f", s)
	return s, path, passed, msg, true
}
