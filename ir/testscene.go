package ir

// NewTestScene builds the canonical 800x600 opaque-red-rectangle scene used
// by harness and backend self-tests. It mirrors
// original_source's CreateTestScene: a single solid-red fill covering most
// of the canvas, under an identity matrix.
func NewTestScene() *Scene {
	b := NewBuilder(800, 600)
	red := b.AddPaint(Paint{Type: PaintSolid, Color: Color{R: 255, A: 255}})
	rect := b.AddPath(Path{
		Verbs: []PathVerb{VerbMoveTo, VerbLineTo, VerbLineTo, VerbLineTo, VerbClose},
		Points: []Point{
			{X: 50, Y: 50},
			{X: 750, Y: 50},
			{X: 750, Y: 550},
			{X: 50, Y: 550},
		},
	})
	b.SetMatrix([6]float32{1, 0, 0, 1, 0, 0})
	b.SetFill(red, FillRuleNonZero)
	b.FillPath(rect)
	b.End()

	s, err := Decode(b.Build())
	if err != nil {
		// The builder only ever produces well-formed output; a failure here
		// means the builder and decoder have drifted out of sync.
		panic("ir: NewTestScene produced an invalid scene: " + err.Error())
	}
	return s
}
