// Package artifact writes rendered frames to disk as PNGs and compares
// them against golden images via SSIM, mirroring original_source's
// artifacts/naming.cpp, png_writer.cpp/png_reader.cpp, and
// ssim_compare.cpp.
package artifact

import "strings"

// Sanitize lowercases s and keeps only ASCII alphanumerics, '-', and '_',
// replacing every other rune with '_'. It matches original_source's
// sanitize() exactly so artifact filenames are stable across ports.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Path returns the deterministic artifact filename for a (scene, backend)
// pair: sanitize(scene) + "_" + sanitize(backend) + suffix.
func Path(scene, backendName, suffix string) string {
	return Sanitize(scene) + "_" + Sanitize(backendName) + suffix
}
