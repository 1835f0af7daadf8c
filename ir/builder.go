package ir

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"math"
)

// Builder assembles a well-formed IR byte stream. It is used by tests and
// by NewTestScene; it is not part of the measured path.
type Builder struct {
	width, height int
	paints        []Paint
	paths         []Path
	cmds          bytes.Buffer
}

// NewBuilder starts a scene of the given pixel dimensions.
func NewBuilder(width, height int) *Builder {
	return &Builder{width: width, height: height}
}

// AddPaint appends a paint and returns its index for use in SetFill/SetStroke.
func (b *Builder) AddPaint(p Paint) uint32 {
	b.paints = append(b.paints, p)
	return uint32(len(b.paints) - 1)
}

// AddPath appends a path and returns its index for use in FillPath/StrokePath.
func (b *Builder) AddPath(p Path) uint32 {
	b.paths = append(b.paths, p)
	return uint32(len(b.paths) - 1)
}

func (b *Builder) op(o Opcode) { b.cmds.WriteByte(byte(o)) }

func putF32(buf *bytes.Buffer, v float32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(v))
	buf.Write(tmp[:])
}

func putU32(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}

func putU16(buf *bytes.Buffer, v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	buf.Write(tmp[:])
}

// Save emits a Save opcode.
func (b *Builder) Save() { b.op(OpSave) }

// Restore emits a Restore opcode.
func (b *Builder) Restore() { b.op(OpRestore) }

// Clear emits a Clear opcode.
func (b *Builder) Clear() { b.op(OpClear) }

// SetMatrix emits a SetMatrix opcode with a 2x3 affine matrix (a,b,c,d,e,f).
func (b *Builder) SetMatrix(m [6]float32) {
	b.op(OpSetMatrix)
	for _, v := range m {
		putF32(&b.cmds, v)
	}
}

// ConcatMatrix emits a ConcatMatrix opcode.
func (b *Builder) ConcatMatrix(m [6]float32) {
	b.op(OpConcatMatrix)
	for _, v := range m {
		putF32(&b.cmds, v)
	}
}

// SetFill emits a SetFill opcode referencing a paint by index and the fill
// rule to apply to subsequent FillPath calls.
func (b *Builder) SetFill(paintIdx uint32, rule FillRule) {
	b.op(OpSetFill)
	putU16(&b.cmds, uint16(paintIdx))
	b.cmds.WriteByte(byte(rule))
}

// SetStroke emits a SetStroke opcode referencing a paint, width, and
// packed cap/join options (see PackStrokeOptions).
func (b *Builder) SetStroke(paintIdx uint32, width float32, opts uint8) {
	b.op(OpSetStroke)
	putU16(&b.cmds, uint16(paintIdx))
	putF32(&b.cmds, width)
	b.cmds.WriteByte(opts)
}

// SetDash emits a SetDash opcode: an on/off length pattern applied to
// subsequent StrokePath calls, plus a starting phase offset into the
// pattern. An empty segments slice disables dashing.
func (b *Builder) SetDash(segments []float32, offset float32) {
	b.op(OpSetDash)
	putU16(&b.cmds, uint16(len(segments)))
	for _, v := range segments {
		putF32(&b.cmds, v)
	}
	putF32(&b.cmds, offset)
}

// FillPath emits a FillPath opcode referencing a path by index.
func (b *Builder) FillPath(pathIdx uint32) {
	b.op(OpFillPath)
	putU16(&b.cmds, uint16(pathIdx))
}

// StrokePath emits a StrokePath opcode referencing a path by index.
func (b *Builder) StrokePath(pathIdx uint32) {
	b.op(OpStrokePath)
	putU16(&b.cmds, uint16(pathIdx))
}

// End emits the terminating End opcode.
func (b *Builder) End() { b.op(OpEnd) }

// Build serializes the accumulated state into a complete IR file, computing
// total_size and scene_crc.
func (b *Builder) Build() []byte {
	var body bytes.Buffer

	var info bytes.Buffer
	putU32(&info, uint32(b.width))
	putU32(&info, uint32(b.height))
	writeSection(&body, SectionInfo, info.Bytes())

	var paint bytes.Buffer
	putU16(&paint, uint16(len(b.paints)))
	for _, p := range b.paints {
		paint.WriteByte(byte(p.Type))
		switch p.Type {
		case PaintSolid:
			writeColor(&paint, p.Color)
		case PaintLinear:
			putF32(&paint, p.Start.X)
			putF32(&paint, p.Start.Y)
			putF32(&paint, p.End.X)
			putF32(&paint, p.End.Y)
			writeStops(&paint, p.Stops)
		case PaintRadial:
			putF32(&paint, p.Start.X)
			putF32(&paint, p.Start.Y)
			putF32(&paint, p.Radius)
			writeStops(&paint, p.Stops)
		}
	}
	writeSection(&body, SectionPaint, paint.Bytes())

	var path bytes.Buffer
	putU16(&path, uint16(len(b.paths)))
	for _, pth := range b.paths {
		putU16(&path, uint16(len(pth.Verbs)))
		for _, v := range pth.Verbs {
			path.WriteByte(byte(v))
		}
		putU16(&path, uint16(len(pth.Points)))
		for _, pt := range pth.Points {
			putF32(&path, pt.X)
			putF32(&path, pt.Y)
		}
	}
	writeSection(&body, SectionPath, path.Bytes())

	writeSection(&body, SectionCommand, b.cmds.Bytes())

	crc := crc32.ChecksumIEEE(body.Bytes())

	var out bytes.Buffer
	out.Write(Magic[:])
	out.WriteByte(MajorVersion)
	out.WriteByte(MinorVersion)
	out.Write([]byte{0, 0}) // reserved
	putU32(&out, uint32(HeaderSize+body.Len()))
	putU32(&out, crc)
	out.Write(body.Bytes())
	return out.Bytes()
}

func writeSection(body *bytes.Buffer, typ SectionType, payload []byte) {
	body.WriteByte(byte(typ))
	body.WriteByte(0) // reserved
	putU32(body, uint32(len(payload)))
	body.Write(payload)
}

func writeColor(buf *bytes.Buffer, c Color) {
	buf.Write([]byte{c.R, c.G, c.B, c.A})
}

func writeStops(buf *bytes.Buffer, stops []GradientStop) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], uint16(len(stops)))
	buf.Write(tmp[:])
	for _, s := range stops {
		putF32(buf, s.Offset)
		writeColor(buf, s.Color)
	}
}
