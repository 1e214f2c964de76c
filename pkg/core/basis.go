package core

import "math"

// Basis is an orthonormal frame around a shading normal.
// Tangent and Bitangent span the surface plane, Normal points away from it.
type Basis struct {
	Tangent   Vec3
	Bitangent Vec3
	Normal    Vec3
}

// NewBasis builds an orthonormal basis from a unit normal
func NewBasis(normal Vec3) Basis {
	// Pick a helper axis that is not nearly parallel to the normal
	var helper Vec3
	if math.Abs(normal.X) > 0.1 {
		helper = NewVec3(0, 1, 0)
	} else {
		helper = NewVec3(1, 0, 0)
	}

	tangent := helper.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	return Basis{Tangent: tangent, Bitangent: bitangent, Normal: normal}
}

// ToWorld transforms a local-frame direction (x along tangent, y along
// bitangent, z along normal) into world space
func (b Basis) ToWorld(local Vec3) Vec3 {
	return b.Tangent.Multiply(local.X).
		Add(b.Bitangent.Multiply(local.Y)).
		Add(b.Normal.Multiply(local.Z))
}

// ToLocal transforms a world-space direction into the basis frame
func (b Basis) ToLocal(world Vec3) Vec3 {
	return NewVec3(world.Dot(b.Tangent), world.Dot(b.Bitangent), world.Dot(b.Normal))
}
