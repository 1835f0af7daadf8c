package capability

import (
	"encoding/binary"

	"github.com/vgcpu/vgbench/ir"
)

// FromScene derives a Required from a decoded scene's declared dimensions
// and paint/opcode content, plus the thread count the active policy asked
// for. It walks the scene once; the harness calls it once per case.
func FromScene(s *ir.Scene, threadCount int) Required {
	req := Required{
		Width:         s.Width(),
		Height:        s.Height(),
		NeedsParallel: threadCount > 1,
	}
	for _, p := range s.Paints() {
		switch p.Type {
		case ir.PaintLinear:
			req.NeedsLinear = true
		case ir.PaintRadial:
			req.NeedsRadial = true
		}
	}
	cmds := s.CommandStream()
	for i := 0; i < len(cmds); {
		op := ir.Opcode(cmds[i])
		i++
		switch op {
		case ir.OpEnd, ir.OpSave, ir.OpRestore, ir.OpClear:
		case ir.OpSetMatrix, ir.OpConcatMatrix:
			i += 24
		case ir.OpSetFill:
			switch ir.FillRule(cmds[i+2]) {
			case ir.FillRuleEvenOdd:
				req.NeedsEvenOdd = true
			default:
				req.NeedsNonZero = true
			}
			i += 3
		case ir.OpSetStroke:
			opts := cmds[i+6]
			switch ir.UnpackStrokeCap(opts) {
			case ir.StrokeCapRound:
				req.NeedsCapRound = true
			case ir.StrokeCapSquare:
				req.NeedsCapSquare = true
			default:
				req.NeedsCapButt = true
			}
			switch ir.UnpackStrokeJoin(opts) {
			case ir.StrokeJoinRound:
				req.NeedsJoinRound = true
			case ir.StrokeJoinBevel:
				req.NeedsJoinBevel = true
			default:
				req.NeedsJoinMiter = true
			}
			i += 7
		case ir.OpSetDash:
			segCount := int(binary.LittleEndian.Uint16(cmds[i : i+2]))
			if segCount > 0 {
				req.NeedsDashes = true
			}
			i += 2 + segCount*4 + 4
		case ir.OpFillPath, ir.OpStrokePath:
			i += 2
		default:
			// Already rejected by ir.Decode; unreachable for a decoded Scene.
			return req
		}
	}
	return req
}
