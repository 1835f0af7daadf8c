package artifact

import "testing"

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"Simple Scene":  "simple_scene",
		"linear-grad_1": "linear-grad_1",
		"Weird/Path*?":  "weird_path__",
		"":              "",
	}
	for in, want := range cases {
		if got := Sanitize(in); got != want {
			t.Errorf("Sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPath(t *testing.T) {
	got := Path("Radial Gradient", "softwaregg", ".png")
	want := "radial_gradient_softwaregg.png"
	if got != want {
		t.Errorf("Path(...) = %q, want %q", got, want)
	}
}
