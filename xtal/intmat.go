package xtal

// Exact integer 3×3 matrix helpers used by superlattices and index
// converters. Keeping this arithmetic in integers (adjugate + determinant
// instead of a floating-point inverse) is what makes bring-within exact.

// detInt3 returns the determinant of an integer 3×3 matrix.
func detInt3(m [3][3]int) int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// adjugateInt3 returns the adjugate (transposed cofactor matrix), so that
// m · adj(m) = det(m) · I exactly.
func adjugateInt3(m [3][3]int) [3][3]int {
	var a [3][3]int
	a[0][0] = m[1][1]*m[2][2] - m[1][2]*m[2][1]
	a[0][1] = m[0][2]*m[2][1] - m[0][1]*m[2][2]
	a[0][2] = m[0][1]*m[1][2] - m[0][2]*m[1][1]
	a[1][0] = m[1][2]*m[2][0] - m[1][0]*m[2][2]
	a[1][1] = m[0][0]*m[2][2] - m[0][2]*m[2][0]
	a[1][2] = m[0][2]*m[1][0] - m[0][0]*m[1][2]
	a[2][0] = m[1][0]*m[2][1] - m[1][1]*m[2][0]
	a[2][1] = m[0][1]*m[2][0] - m[0][0]*m[2][1]
	a[2][2] = m[0][0]*m[1][1] - m[0][1]*m[1][0]

	return a
}

// mulInt3Cell returns m · u for an integer matrix and a unit cell vector.
func mulInt3Cell(m [3][3]int, u UnitCell) UnitCell {
	var r UnitCell
	for i := 0; i < 3; i++ {
		r[i] = m[i][0]*u[0] + m[i][1]*u[1] + m[i][2]*u[2]
	}

	return r
}

// floorDiv returns ⌊a/b⌋ for b > 0 or b < 0, rounding toward negative
// infinity rather than toward zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
