package softwaregg

// matrix is a 2D affine transform [a b c d e f] applied as:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// matching the 6-float32 payload of ir opcodes SetMatrix/ConcatMatrix.
type matrix struct {
	a, b, c, d, e, f float32
}

func identityMatrix() matrix {
	return matrix{a: 1, d: 1}
}

func newMatrix(m [6]float32) matrix {
	return matrix{a: m[0], b: m[1], c: m[2], d: m[3], e: m[4], f: m[5]}
}

// apply transforms a point by m.
func (m matrix) apply(x, y float32) (float32, float32) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// concat returns m composed with n applied first: result = m * n, i.e. a
// point is transformed by n, then by m — matching ConcatMatrix's
// "concatenate onto the current transform" semantics.
func (m matrix) concat(n matrix) matrix {
	return matrix{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}
