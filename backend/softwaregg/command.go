package softwaregg

import (
	"encoding/binary"
	"image"
	"image/draw"
	"math"

	"github.com/vgcpu/vgbench/ir"
)

// interpState is the replayed graphics state: the transform stack plus the
// active fill and stroke paints, mirroring the Save/Restore/SetMatrix/
// ConcatMatrix/SetFill/SetStroke opcodes.
type interpState struct {
	xform       matrix
	fillPaint   int
	fillRule    ir.FillRule
	strokePaint int
	strokeW     float32
	strokeOpts  uint8
	dashes      []float32
	dashOffset  float32
}

// replay walks scene's command stream and draws into dst, a view of the
// output buffer whose row 0 corresponds to scene y-coordinate originY.
// dst's width/height determine the fill rasterizer's working area, so a
// caller rendering one row band of a larger surface passes a band-sized
// dst and the band's absolute Y offset.
func replay(scene *ir.Scene, dst draw.Image, width, height int, originY float32) error {
	paints := scene.Paints()
	paths := scene.Paths()
	cmds := scene.CommandStream()

	stack := []interpState{{xform: identityMatrix(), fillPaint: -1, strokePaint: -1}}
	cur := &stack[len(stack)-1]

	i := 0
	for i < len(cmds) {
		op := ir.Opcode(cmds[i])
		i++
		switch op {
		case ir.OpEnd:
			return nil
		case ir.OpSave:
			stack = append(stack, *cur)
			cur = &stack[len(stack)-1]
		case ir.OpRestore:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
			cur = &stack[len(stack)-1]
		case ir.OpClear:
			clear(dst, width, height)
		case ir.OpSetMatrix:
			m := readMatrix(cmds[i:])
			cur.xform = m
			i += 24
		case ir.OpConcatMatrix:
			m := readMatrix(cmds[i:])
			cur.xform = cur.xform.concat(m)
			i += 24
		case ir.OpSetFill:
			cur.fillPaint = int(binary.LittleEndian.Uint16(cmds[i : i+2]))
			cur.fillRule = ir.FillRule(cmds[i+2])
			i += 3
		case ir.OpSetStroke:
			cur.strokePaint = int(binary.LittleEndian.Uint16(cmds[i : i+2]))
			cur.strokeW = readF32(cmds[i+2:])
			cur.strokeOpts = cmds[i+6]
			i += 7
		case ir.OpSetDash:
			segCount := int(binary.LittleEndian.Uint16(cmds[i : i+2]))
			i += 2
			dashes := make([]float32, segCount)
			for j := range dashes {
				dashes[j] = readF32(cmds[i:])
				i += 4
			}
			cur.dashes = dashes
			cur.dashOffset = readF32(cmds[i:])
			i += 4
		case ir.OpFillPath:
			idx := int(binary.LittleEndian.Uint16(cmds[i : i+2]))
			i += 2
			if cur.fillPaint >= 0 && cur.fillPaint < len(paints) {
				devicePath := transformPath(paths[idx], cur.xform)
				fillPath(dst, width, height, devicePath, originY, paints[cur.fillPaint], cur.fillRule)
			}
		case ir.OpStrokePath:
			idx := int(binary.LittleEndian.Uint16(cmds[i : i+2]))
			i += 2
			if cur.strokePaint >= 0 && cur.strokePaint < len(paints) {
				devicePath := transformPath(paths[idx], cur.xform)
				scale := transformScale(cur.xform)
				outline := expandStroke(devicePath, cur.strokeW*scale, cur.strokeOpts, cur.dashes, cur.dashOffset*scale)
				fillPath(dst, width, height, outline, originY, paints[cur.strokePaint], ir.FillRuleNonZero)
			}
		default:
			// ir.Decode already rejected unknown opcodes at load time.
			return nil
		}
	}
	return nil
}

func clear(dst draw.Image, width, height int) {
	draw.Draw(dst, image.Rect(0, 0, width, height), image.Transparent, image.Point{}, draw.Src)
}

func readMatrix(p []byte) matrix {
	var m [6]float32
	for j := range m {
		m[j] = readF32(p[j*4:])
	}
	return newMatrix(m)
}

func readF32(p []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p[0:4]))
}

func transformPath(p ir.Path, m matrix) ir.Path {
	out := ir.Path{Verbs: p.Verbs, Points: make([]ir.Point, len(p.Points))}
	for i, pt := range p.Points {
		x, y := m.apply(pt.X, pt.Y)
		out.Points[i] = ir.Point{X: x, Y: y}
	}
	return out
}

// transformScale estimates a uniform scale factor from m, used to scale
// stroke width into device space. For a non-uniform (anisotropic) matrix
// this is an approximation: the geometric mean of the two axis scales.
func transformScale(m matrix) float32 {
	sx := sqrt32(m.a*m.a + m.b*m.b)
	sy := sqrt32(m.c*m.c + m.d*m.d)
	return sqrt32(sx * sy)
}
