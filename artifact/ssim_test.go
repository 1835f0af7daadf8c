package artifact

import "testing"

func solidFrame(w, h int, r, g, b byte) []byte {
	buf := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		off := i * 4
		buf[off], buf[off+1], buf[off+2], buf[off+3] = r, g, b, 255
	}
	return buf
}

func TestSSIMIdenticalFramesIsOne(t *testing.T) {
	frame := solidFrame(16, 16, 200, 50, 50)
	score, err := SSIM(frame, frame, 16, 16)
	if err != nil {
		t.Fatalf("SSIM: %v", err)
	}
	if score < 0.999 {
		t.Fatalf("SSIM(identical, identical) = %v, want ~1.0", score)
	}
}

func TestSSIMDifferentFramesIsLower(t *testing.T) {
	a := solidFrame(16, 16, 255, 0, 0)
	b := solidFrame(16, 16, 0, 0, 255)
	score, err := SSIM(a, b, 16, 16)
	if err != nil {
		t.Fatalf("SSIM: %v", err)
	}
	if score >= 0.999 {
		t.Fatalf("SSIM(red, blue) = %v, want clearly less than 1.0", score)
	}
}

func TestSSIMBufferTooSmall(t *testing.T) {
	if _, err := SSIM(make([]byte, 4), make([]byte, 4), 16, 16); err == nil {
		t.Fatal("expected error for undersized buffers")
	}
}
