package core

// Mat3 is a 3x3 matrix stored as column vectors
type Mat3 struct {
	XAxis, YAxis, ZAxis Vec3
}

// IdentityMat3 returns the identity matrix
func IdentityMat3() Mat3 {
	return Mat3{
		XAxis: NewVec3(1, 0, 0),
		YAxis: NewVec3(0, 1, 0),
		ZAxis: NewVec3(0, 0, 1),
	}
}

// NewMat3FromCols creates a matrix from three column vectors
func NewMat3FromCols(xAxis, yAxis, zAxis Vec3) Mat3 {
	return Mat3{XAxis: xAxis, YAxis: yAxis, ZAxis: zAxis}
}

// MulVec3 multiplies the matrix by a vector
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return m.XAxis.Multiply(v.X).
		Add(m.YAxis.Multiply(v.Y)).
		Add(m.ZAxis.Multiply(v.Z))
}

// Transform is a rigid transform: a rotation followed by a translation
type Transform struct {
	Rotation    Mat3
	Translation Vec3
}

// IdentityTransform returns a transform that leaves points unchanged
func IdentityTransform() Transform {
	return Transform{Rotation: IdentityMat3()}
}

// NewTransformFromTranslation returns a pure translation transform
func NewTransformFromTranslation(translation Vec3) Transform {
	return Transform{Rotation: IdentityMat3(), Translation: translation}
}

// LookTo builds a transform positioned at eye and oriented along dir,
// with up fixing the roll. dir must be non-degenerate and not parallel to up.
func LookTo(eye, dir, up Vec3) Transform {
	front := dir.Normalize()
	right := front.Cross(up).Normalize()
	trueUp := right.Cross(front)

	return Transform{
		Rotation:    NewMat3FromCols(right, trueUp, front.Negate()),
		Translation: eye,
	}
}

// LookAt builds a transform positioned at eye and oriented toward center
func LookAt(eye, center, up Vec3) Transform {
	return LookTo(eye, center.Subtract(eye), up)
}
