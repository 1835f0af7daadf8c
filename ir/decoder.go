package ir

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"hash/crc32"
	"math"
)

// Sentinel errors returned by Validate/Decode. Callers should use
// errors.Is to test for these; the wrapped error carries the detail.
var (
	ErrBadMagic       = errors.New("ir: bad magic")
	ErrUnsupportedVer = errors.New("ir: unsupported major version")
	ErrTruncated      = errors.New("ir: truncated data")
	ErrCRCMismatch    = errors.New("ir: scene_crc mismatch")
	ErrUnknownSection = errors.New("ir: unknown section type")
	ErrUnknownOpcode  = errors.New("ir: unknown opcode")
	ErrUnknownVerb    = errors.New("ir: unknown path verb")
	ErrMalformed      = errors.New("ir: malformed section")
	ErrMissingEnd     = errors.New("ir: command stream missing terminating End opcode")
)

// header is the decoded fixed-size file header.
type header struct {
	major, minor uint8
	totalSize    uint32
	sceneCRC     uint32
}

func decodeHeader(data []byte) (header, []byte, error) {
	if len(data) < HeaderSize {
		return header{}, nil, fmt.Errorf("%w: need %d header bytes, have %d", ErrTruncated, HeaderSize, len(data))
	}
	if data[0] != Magic[0] || data[1] != Magic[1] || data[2] != Magic[2] || data[3] != Magic[3] {
		return header{}, nil, ErrBadMagic
	}
	h := header{
		major:     data[4],
		minor:     data[5],
		totalSize: binary.LittleEndian.Uint32(data[8:12]),
		sceneCRC:  binary.LittleEndian.Uint32(data[12:16]),
	}
	if h.major != MajorVersion {
		return header{}, nil, fmt.Errorf("%w: file is v%d.%d, decoder supports v%d.x", ErrUnsupportedVer, h.major, h.minor, MajorVersion)
	}
	return h, data[HeaderSize:], nil
}

type rawSection struct {
	typ     SectionType
	payload []byte
}

func splitSections(body []byte) ([]rawSection, error) {
	var out []rawSection
	for len(body) > 0 {
		if len(body) < SectionHeaderSize {
			return nil, fmt.Errorf("%w: partial section header", ErrTruncated)
		}
		typ := SectionType(body[0])
		length := binary.LittleEndian.Uint32(body[2:6])
		body = body[SectionHeaderSize:]
		if uint32(len(body)) < length {
			return nil, fmt.Errorf("%w: section %s declares %d bytes, %d remain", ErrTruncated, typ, length, len(body))
		}
		out = append(out, rawSection{typ: typ, payload: body[:length]})
		body = body[length:]
	}
	return out, nil
}

// Decode parses raw IR bytes into a Scene, validating structure, section
// bounds, opcode/verb identity, and the scene_crc checksum. It performs no
// rendering and allocates only the Scene's backing slices.
func Decode(data []byte) (*Scene, error) {
	h, body, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	if uint32(len(data)) < h.totalSize {
		return nil, fmt.Errorf("%w: header declares total_size %d, have %d", ErrTruncated, h.totalSize, len(data))
	}
	gotCRC := crc32.ChecksumIEEE(body)
	if gotCRC != h.sceneCRC {
		return nil, fmt.Errorf("%w: header %08x, computed %08x", ErrCRCMismatch, h.sceneCRC, gotCRC)
	}

	sections, err := splitSections(body)
	if err != nil {
		return nil, err
	}

	s := &Scene{crc: h.sceneCRC, hash: Hash(data)}
	for _, sec := range sections {
		switch sec.typ {
		case SectionInfo:
			if err := decodeInfo(sec.payload, s); err != nil {
				return nil, err
			}
		case SectionPaint:
			paints, err := decodePaints(sec.payload)
			if err != nil {
				return nil, err
			}
			s.paints = paints
		case SectionPath:
			paths, err := decodePaths(sec.payload)
			if err != nil {
				return nil, err
			}
			s.paths = paths
		case SectionCommand:
			if err := validateCommandStream(sec.payload, len(s.paints), len(s.paths)); err != nil {
				return nil, err
			}
			s.commandStream = sec.payload
		case SectionExtension:
			// Extension sections are opaque and forward-compatible: skip.
		default:
			return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownSection, sec.typ)
		}
	}
	return s, nil
}

func decodeInfo(p []byte, s *Scene) error {
	if len(p) < 8 {
		return fmt.Errorf("%w: Info section too short", ErrMalformed)
	}
	s.width = int(binary.LittleEndian.Uint32(p[0:4]))
	s.height = int(binary.LittleEndian.Uint32(p[4:8]))
	return nil
}

func readF32(p []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p[off : off+4]))
}

func decodeColor(p []byte) Color {
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Hash returns the lowercase hex SHA-256 digest of data, matching
// original_source's IrLoader::ComputeHash contract.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func decodePaints(p []byte) ([]Paint, error) {
	if len(p) < 2 {
		return nil, fmt.Errorf("%w: Paint section too short", ErrMalformed)
	}
	count := binary.LittleEndian.Uint16(p[0:2])
	p = p[2:]
	paints := make([]Paint, 0, count)
	for i := uint16(0); i < count; i++ {
		if len(p) < 1 {
			return nil, fmt.Errorf("%w: Paint %d truncated", ErrMalformed, i)
		}
		typ := PaintType(p[0])
		p = p[1:]
		var paint Paint
		paint.Type = typ
		switch typ {
		case PaintSolid:
			if len(p) < 4 {
				return nil, fmt.Errorf("%w: solid paint %d truncated", ErrMalformed, i)
			}
			paint.Color = decodeColor(p[0:4])
			p = p[4:]
		case PaintLinear:
			if len(p) < 18 {
				return nil, fmt.Errorf("%w: linear paint %d truncated", ErrMalformed, i)
			}
			paint.Start = Point{X: readF32(p, 0), Y: readF32(p, 4)}
			paint.End = Point{X: readF32(p, 8), Y: readF32(p, 12)}
			stopCount := binary.LittleEndian.Uint16(p[16:18])
			p = p[18:]
			stops, rest, err := decodeStops(p, stopCount)
			if err != nil {
				return nil, fmt.Errorf("linear paint %d: %w", i, err)
			}
			paint.Stops = stops
			p = rest
		case PaintRadial:
			if len(p) < 14 {
				return nil, fmt.Errorf("%w: radial paint %d truncated", ErrMalformed, i)
			}
			paint.Start = Point{X: readF32(p, 0), Y: readF32(p, 4)}
			paint.Radius = readF32(p, 8)
			stopCount := binary.LittleEndian.Uint16(p[12:14])
			p = p[14:]
			stops, rest, err := decodeStops(p, stopCount)
			if err != nil {
				return nil, fmt.Errorf("radial paint %d: %w", i, err)
			}
			paint.Stops = stops
			p = rest
		default:
			return nil, fmt.Errorf("%w: paint %d has type 0x%02x", ErrMalformed, i, typ)
		}
		paints = append(paints, paint)
	}
	return paints, nil
}

func decodeStops(p []byte, count uint16) ([]GradientStop, []byte, error) {
	stops := make([]GradientStop, 0, count)
	for j := uint16(0); j < count; j++ {
		if len(p) < 8 {
			return nil, nil, fmt.Errorf("%w: stop %d truncated", ErrMalformed, j)
		}
		stops = append(stops, GradientStop{
			Offset: readF32(p, 0),
			Color:  decodeColor(p[4:8]),
		})
		p = p[8:]
	}
	return stops, p, nil
}

func decodePaths(p []byte) ([]Path, error) {
	if len(p) < 2 {
		return nil, fmt.Errorf("%w: Path section too short", ErrMalformed)
	}
	count := binary.LittleEndian.Uint16(p[0:2])
	p = p[2:]
	paths := make([]Path, 0, count)
	for i := uint16(0); i < count; i++ {
		if len(p) < 2 {
			return nil, fmt.Errorf("%w: path %d truncated (verb count)", ErrMalformed, i)
		}
		verbCount := binary.LittleEndian.Uint16(p[0:2])
		p = p[2:]
		if uint16(len(p)) < verbCount {
			return nil, fmt.Errorf("%w: path %d truncated (verbs)", ErrMalformed, i)
		}
		verbs := make([]PathVerb, verbCount)
		wantPoints := 0
		for j := uint16(0); j < verbCount; j++ {
			v := PathVerb(p[j])
			if v.PointCount() < 0 {
				return nil, fmt.Errorf("%w: path %d verb %d is 0x%02x", ErrUnknownVerb, i, j, p[j])
			}
			verbs[j] = v
			wantPoints += v.PointCount()
		}
		p = p[verbCount:]
		if len(p) < 2 {
			return nil, fmt.Errorf("%w: path %d truncated (point count)", ErrMalformed, i)
		}
		pointCount := binary.LittleEndian.Uint16(p[0:2])
		p = p[2:]
		if int(pointCount) != wantPoints {
			return nil, fmt.Errorf("%w: path %d verbs need %d points, declares %d", ErrMalformed, i, wantPoints, pointCount)
		}
		need := int(pointCount) * 8
		if len(p) < need {
			return nil, fmt.Errorf("%w: path %d truncated (points)", ErrMalformed, i)
		}
		points := make([]Point, pointCount)
		for j := uint16(0); j < pointCount; j++ {
			off := int(j) * 8
			points[j] = Point{X: readF32(p, off), Y: readF32(p, off+4)}
		}
		p = p[need:]
		paths = append(paths, Path{Verbs: verbs, Points: points})
	}
	return paths, nil
}

// validateCommandStream walks the opcode stream, checking every opcode is
// known and every paint/path index it references is in range. It does not
// interpret matrix or color payloads beyond their fixed byte width.
func validateCommandStream(cmds []byte, numPaints, numPaths int) error {
	p := cmds
	sawEnd := false
	for len(p) > 0 {
		op := Opcode(p[0])
		p = p[1:]
		switch op {
		case OpEnd:
			sawEnd = true
		case OpSave, OpRestore, OpClear:
			// no operands
		case OpSetMatrix, OpConcatMatrix:
			if len(p) < 24 {
				return fmt.Errorf("%w: %s truncated matrix", ErrMalformed, op)
			}
			p = p[24:]
		case OpSetFill:
			if len(p) < 3 {
				return fmt.Errorf("%w: %s truncated", ErrMalformed, op)
			}
			idx := int(binary.LittleEndian.Uint16(p[0:2]))
			if idx >= numPaints {
				return fmt.Errorf("%w: %s references paint %d, have %d", ErrMalformed, op, idx, numPaints)
			}
			p = p[3:]
		case OpSetStroke:
			if len(p) < 7 {
				return fmt.Errorf("%w: %s truncated", ErrMalformed, op)
			}
			idx := int(binary.LittleEndian.Uint16(p[0:2]))
			if idx >= numPaints {
				return fmt.Errorf("%w: %s references paint %d, have %d", ErrMalformed, op, idx, numPaints)
			}
			p = p[7:]
		case OpSetDash:
			if len(p) < 2 {
				return fmt.Errorf("%w: %s truncated segment count", ErrMalformed, op)
			}
			segCount := int(binary.LittleEndian.Uint16(p[0:2]))
			need := 2 + segCount*4 + 4
			if len(p) < need {
				return fmt.Errorf("%w: %s truncated", ErrMalformed, op)
			}
			p = p[need:]
		case OpFillPath, OpStrokePath:
			if len(p) < 2 {
				return fmt.Errorf("%w: %s missing path index", ErrMalformed, op)
			}
			idx := int(binary.LittleEndian.Uint16(p[0:2]))
			p = p[2:]
			if idx >= numPaths {
				return fmt.Errorf("%w: %s references path %d, have %d", ErrMalformed, op, idx, numPaths)
			}
		default:
			return fmt.Errorf("%w: 0x%02x", ErrUnknownOpcode, byte(op))
		}
	}
	if !sawEnd {
		return ErrMissingEnd
	}
	return nil
}
