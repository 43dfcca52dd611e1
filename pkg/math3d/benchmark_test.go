package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V3(1, 2, 3))
	m2 := RotateZ(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec4(b *testing.B) {
	m := Translate(V3(1, 2, 3)).Mul(RotateZ(0.5))
	v := V4FromV3(V3(1, 2, 3), 1)

	for b.Loop() {
		_ = m.MulVec4(v)
	}
}

func BenchmarkRotateAbout(b *testing.B) {
	pivot := V3(-505, 57, 0)

	for b.Loop() {
		_ = RotateAbout(pivot, Up(), Radians(90))
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkViewProjection(b *testing.B) {
	view := LookAt(V3(0, 4000, 1500), V3(0, 0, 1000), Up())
	proj := Perspective(Radians(45), 1.333, 10, 50000)

	for b.Loop() {
		_ = proj.Mul(view)
	}
}
