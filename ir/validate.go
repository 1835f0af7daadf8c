package ir

import "encoding/binary"

// ValidationReport summarizes a successfully decoded scene for the
// "vgcpu-bench validate" command: structural counts useful for a human to
// sanity-check an .irbin file without rendering it.
type ValidationReport struct {
	Width, Height int
	SceneCRC      uint32
	NumPaints     int
	NumPaths      int
	NumOpcodes    int
	OpcodeCounts  map[string]int
}

// Validate decodes data and, on success, summarizes it into a
// ValidationReport. On failure it returns the same error Decode would.
func Validate(data []byte) (*ValidationReport, error) {
	scene, err := Decode(data)
	if err != nil {
		return nil, err
	}
	report := &ValidationReport{
		Width:        scene.Width(),
		Height:       scene.Height(),
		SceneCRC:     scene.CRC(),
		NumPaints:    len(scene.Paints()),
		NumPaths:     len(scene.Paths()),
		OpcodeCounts: make(map[string]int),
	}
	cmds := scene.CommandStream()
	i := 0
	for i < len(cmds) {
		op := Opcode(cmds[i])
		i++
		report.NumOpcodes++
		report.OpcodeCounts[op.String()]++
		switch op {
		case OpEnd, OpSave, OpRestore, OpClear:
		case OpSetMatrix, OpConcatMatrix:
			i += 24
		case OpSetFill:
			i += 3
		case OpSetStroke:
			i += 7
		case OpSetDash:
			segCount := int(binary.LittleEndian.Uint16(cmds[i : i+2]))
			i += 2 + segCount*4 + 4
		case OpFillPath, OpStrokePath:
			i += 2
		default:
			return report, nil
		}
	}
	return report, nil
}
