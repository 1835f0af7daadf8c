// Package ir defines the binary intermediate representation consumed by
// vgcpu-bench: file layout constants, opcode/verb/paint enumerations, and
// the validating decoder that turns IR bytes into an immutable [Scene].
package ir

// Magic is the 4-byte file magic: 'V', 'G', 'I', 'R'.
var Magic = [4]byte{'V', 'G', 'I', 'R'}

// Current IR format version understood by this decoder.
const (
	MajorVersion uint8 = 1
	MinorVersion uint8 = 0
)

// HeaderSize is the fixed size of the file header in bytes.
const HeaderSize = 16

// SectionHeaderSize is the fixed size of a section header in bytes.
const SectionHeaderSize = 6

// SectionType identifies the kind of a section following the file header.
type SectionType uint8

const (
	SectionInfo      SectionType = 0x01
	SectionPaint     SectionType = 0x02
	SectionPath      SectionType = 0x03
	SectionCommand   SectionType = 0x04
	SectionExtension SectionType = 0xFF
)

func (t SectionType) String() string {
	switch t {
	case SectionInfo:
		return "Info"
	case SectionPaint:
		return "Paint"
	case SectionPath:
		return "Path"
	case SectionCommand:
		return "Command"
	case SectionExtension:
		return "Extension"
	default:
		return "Unknown"
	}
}

// Opcode identifies a command in the command stream.
type Opcode uint8

const (
	OpEnd          Opcode = 0x00
	OpSave         Opcode = 0x01
	OpRestore      Opcode = 0x02
	OpClear        Opcode = 0x10
	OpSetMatrix    Opcode = 0x20
	OpConcatMatrix Opcode = 0x21
	OpSetFill      Opcode = 0x30
	OpSetStroke    Opcode = 0x31
	OpSetDash      Opcode = 0x32
	OpFillPath     Opcode = 0x40
	OpStrokePath   Opcode = 0x41
)

func (op Opcode) String() string {
	switch op {
	case OpEnd:
		return "End"
	case OpSave:
		return "Save"
	case OpRestore:
		return "Restore"
	case OpClear:
		return "Clear"
	case OpSetMatrix:
		return "SetMatrix"
	case OpConcatMatrix:
		return "ConcatMatrix"
	case OpSetFill:
		return "SetFill"
	case OpSetStroke:
		return "SetStroke"
	case OpSetDash:
		return "SetDash"
	case OpFillPath:
		return "FillPath"
	case OpStrokePath:
		return "StrokePath"
	default:
		return "Unknown"
	}
}

// FillRule selects how SetFill/FillPath determine path interior.
type FillRule uint8

const (
	FillRuleNonZero FillRule = 0
	FillRuleEvenOdd FillRule = 1
)

func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "NonZero"
	case FillRuleEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// StrokeCap selects the shape of a stroke's endpoints.
type StrokeCap uint8

const (
	StrokeCapButt   StrokeCap = 0
	StrokeCapRound  StrokeCap = 1
	StrokeCapSquare StrokeCap = 2
)

// StrokeJoin selects the shape of a stroke's corners.
type StrokeJoin uint8

const (
	StrokeJoinMiter StrokeJoin = 0
	StrokeJoinRound StrokeJoin = 1
	StrokeJoinBevel StrokeJoin = 2
)

// PackStrokeOptions packs cap and join into the SetStroke opts byte.
func PackStrokeOptions(cap StrokeCap, join StrokeJoin) uint8 {
	return uint8(cap) | uint8(join)<<2
}

// UnpackStrokeCap extracts the cap from a SetStroke opts byte.
func UnpackStrokeCap(opts uint8) StrokeCap {
	return StrokeCap(opts & 0x03)
}

// UnpackStrokeJoin extracts the join from a SetStroke opts byte.
func UnpackStrokeJoin(opts uint8) StrokeJoin {
	return StrokeJoin((opts >> 2) & 0x03)
}

// PathVerb identifies a path segment command and its point consumption.
type PathVerb uint8

const (
	VerbMoveTo  PathVerb = 0
	VerbLineTo  PathVerb = 1
	VerbQuadTo  PathVerb = 2
	VerbCubicTo PathVerb = 3
	VerbClose   PathVerb = 4
)

// PointCount returns the number of (x, y) pairs a verb consumes.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	case VerbClose:
		return 0
	default:
		return -1 // unknown verb
	}
}

// PaintType identifies the paint variant stored in a Paint record.
type PaintType uint8

const (
	PaintSolid  PaintType = 0
	PaintLinear PaintType = 1
	PaintRadial PaintType = 2
)
