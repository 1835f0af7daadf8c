package ir

// Path is a sequence of verbs and their associated points, stored as a flat
// point array shared across verbs. Points are float32 (x, y) pairs.
type Path struct {
	Verbs  []PathVerb
	Points []Point
}

// Point is a single (x, y) coordinate in scene space.
type Point struct {
	X, Y float32
}

// Paint is a tagged union of solid, linear-gradient, and radial-gradient
// fill/stroke sources. Only the fields relevant to Type are meaningful.
type Paint struct {
	Type PaintType

	// Solid
	Color Color

	// Linear/Radial gradient geometry.
	Start, End Point // for Radial, Start is the center and End is unused
	Radius     float32

	Stops []GradientStop
}

// Color is a premultiplied-alpha RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// GradientStop is one color stop along a gradient's [0, 1] parametric axis.
type GradientStop struct {
	Offset float32
	Color  Color
}

// Scene is the immutable, decoded form of an IR file: the Go analogue of
// the C++ original's PreparedScene. It exposes read-only views over its
// paints, paths, and the opaque command stream that references them by
// index. Callers must not mutate the slices returned by Paints, Paths, or
// CommandStream; Scene retains ownership.
type Scene struct {
	width, height int
	crc           uint32
	hash          string
	paints        []Paint
	paths         []Path
	commandStream []byte
}

// Width returns the scene's declared canvas width in pixels.
func (s *Scene) Width() int { return s.width }

// Height returns the scene's declared canvas height in pixels.
func (s *Scene) Height() int { return s.height }

// CRC returns the scene_crc recorded in the file header.
func (s *Scene) CRC() uint32 { return s.crc }

// Hash returns the lowercase hex SHA-256 digest of the source bytes Decode
// was given, matching original_source's scene_hash field.
func (s *Scene) Hash() string { return s.hash }

// Paints returns the scene's paint table. The returned slice is owned by
// the Scene and must not be modified.
func (s *Scene) Paints() []Paint { return s.paints }

// Paths returns the scene's path table. The returned slice is owned by the
// Scene and must not be modified.
func (s *Scene) Paths() []Path { return s.paths }

// CommandStream returns the raw opcode byte stream. The returned slice is
// owned by the Scene and must not be modified.
func (s *Scene) CommandStream() []byte { return s.commandStream }
