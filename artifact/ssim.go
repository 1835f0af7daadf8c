package artifact

import (
	"fmt"
	"math"
)

// ssimC1, ssimC2 are the standard SSIM stabilization constants for 8-bit
// channels (K1=0.01, K2=0.03, L=255), as used by every SSIM implementation
// including original_source's windowed ssim_lomont-backed comparator.
const (
	ssimK1, ssimK2 = 0.01, 0.03
	ssimL          = 255.0
)

var ssimC1 = math.Pow(ssimK1*ssimL, 2)
var ssimC2 = math.Pow(ssimK2*ssimL, 2)

// luminance converts one RGBA8 pixel to BT.601 luma, ignoring alpha
// (compared frames are always opaque test scenes).
func luminance(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// toLuma converts a full RGBA8 frame to a flat luma plane.
func toLuma(rgba []byte, width, height int) []float64 {
	out := make([]float64, width*height)
	for i := 0; i < width*height; i++ {
		off := i * 4
		out[i] = luminance(rgba[off], rgba[off+1], rgba[off+2])
	}
	return out
}

// SSIM computes a single full-frame structural similarity index between
// two equally sized RGBA8 buffers, using BT.601 luma. This is a
// simplification of original_source's windowed (11x11 Gaussian) SSIM: one
// global mean/variance/covariance over the whole frame rather than a
// sliding window, which is adequate for comparing whole-scene renders of
// the same synthetic content and avoids depending on a windowed-SSIM
// library not present anywhere in this project's dependency graph.
func SSIM(a, b []byte, width, height int) (float64, error) {
	need := width * height * 4
	if len(a) < need || len(b) < need {
		return 0, fmt.Errorf("artifact: SSIM buffers too small for %dx%d", width, height)
	}
	la := toLuma(a, width, height)
	lb := toLuma(b, width, height)
	n := float64(len(la))

	var meanA, meanB float64
	for i := range la {
		meanA += la[i]
		meanB += lb[i]
	}
	meanA /= n
	meanB /= n

	var varA, varB, covAB float64
	for i := range la {
		da := la[i] - meanA
		db := lb[i] - meanB
		varA += da * da
		varB += db * db
		covAB += da * db
	}
	varA /= n - 1
	varB /= n - 1
	covAB /= n - 1

	numerator := (2*meanA*meanB + ssimC1) * (2*covAB + ssimC2)
	denominator := (meanA*meanA + meanB*meanB + ssimC1) * (varA + varB + ssimC2)
	if denominator == 0 {
		return 1, nil
	}
	return numerator / denominator, nil
}
