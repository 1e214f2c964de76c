package core

// ShadingPoint is the result of intersecting a ray with the scene.
// When Hit is false only Ray is meaningful.
type ShadingPoint struct {
	Hit             bool
	Point           Vec3
	GeometricNormal Vec3
	ShadingNormal   Vec3
	Basis           Basis
	UV              Vec2
	Material        Material
	Ray             Ray
}

// Clear resets the point so a shading-point slot can be reused
func (sp *ShadingPoint) Clear() {
	*sp = ShadingPoint{}
}

// Intersector performs ray/scene hit testing
type Intersector interface {
	// Trace intersects the ray with the scene and returns a shading
	// point. Hit is false when the ray escapes; Ray is always set so the
	// caller can recover the outgoing direction.
	Trace(ray Ray) ShadingPoint
}

// BSDFSample is the result of sampling a BSDF lobe
type BSDFSample struct {
	Incoming Vec3        // sampled incoming direction (unit length)
	Value    Vec3        // BSDF value, premultiplied by |cos(incoming, normal)|
	Pdf      Pdf         // density of the sampled direction
	Mode     ScatterMode // lobe classification
}

// BSDF is the scattering capability of a surface, already bound to a
// surface location (its inputs are evaluated at a UV before use).
type BSDF interface {
	// Sample draws an incoming direction for the given outgoing
	// direction. Returns false if the surface absorbs the path.
	Sample(s *Sampler, adjoint bool, geometricNormal Vec3, basis Basis, outgoing Vec3) (BSDFSample, bool)

	// Evaluate computes the BSDF value and density for a fixed pair of
	// directions. Returns ok=false where the BSDF is undefined, e.g.
	// below the surface or for purely specular lobes.
	Evaluate(adjoint bool, geometricNormal Vec3, basis Basis, outgoing, incoming Vec3) (value Vec3, pdf Pdf, ok bool)
}

// EDF is the emission capability of a light surface
type EDF interface {
	// Sample draws an emission direction from the point described by the
	// normal and basis. Returns the direction, the emitted value and the
	// direction density.
	Sample(sample Vec2, geometricNormal Vec3, basis Basis) (direction Vec3, value Vec3, pdf float64)

	// Evaluate returns the emitted value and density toward a direction
	Evaluate(geometricNormal Vec3, basis Basis, direction Vec3) (value Vec3, pdf float64)
}

// EnvironmentEDF is the emission capability of distant illumination,
// defined over the sphere of directions
type EnvironmentEDF interface {
	// Sample draws a world-space direction from the environment's
	// importance distribution
	Sample(sample Vec2) (direction Vec3, radiance Vec3, pdf float64)

	// Evaluate returns the radiance and density for a direction
	Evaluate(direction Vec3) (radiance Vec3, pdf float64)
}

// Material binds surface capabilities at a surface coordinate. Any of
// the bindings may be absent; the path tracer treats missing bindings as
// a normal terminal state, not an error.
type Material interface {
	// Alpha evaluates the opacity mask at a UV: 1 is fully opaque,
	// 0 fully transparent
	Alpha(uv Vec2) float64

	// SurfaceBSDF returns the BSDF with inputs evaluated at the UV,
	// or nil if no BSDF is bound
	SurfaceBSDF(uv Vec2) BSDF

	// SurfaceEDF returns the EDF with inputs evaluated at the UV,
	// or nil if the surface does not emit
	SurfaceEDF(uv Vec2) EDF
}

// LightPoint is a sampled emission location on a light
type LightPoint struct {
	Position        Vec3
	GeometricNormal Vec3
	Basis           Basis
	UV              Vec2
}

// Light is an emitter that can be sampled for particle tracing
type Light interface {
	// SamplePoint draws an emission point on the light surface and its
	// density per unit area
	SamplePoint(sample Vec2) (LightPoint, float64)

	// EDF returns the light's emission capability at a UV
	EDF(uv Vec2) EDF
}

// LightSample is one emitter pick made by a LightSampler
type LightSample struct {
	Light       Light
	Point       LightPoint
	Probability float64 // light selection probability times area density
}

// LightSampler picks one emitter and a point on it
type LightSampler interface {
	// Sample draws one light sample; ok is false when the scene has no
	// lights
	Sample(s *Sampler) (LightSample, bool)
}

// Camera projects world-space points onto the image plane
type Camera interface {
	// Project maps a world-space point to normalized device coordinates
	// in [0,1)^2. ok is false for points at or behind the camera plane;
	// points outside the unit square are returned with ok=true so the
	// caller decides visibility.
	Project(point Vec3) (ndc Vec2, ok bool)

	Position() Vec3
	Forward() Vec3
	FocalLength() float64
	FilmDimensions() Vec2
}

// Sample is a weighted image-plane contribution produced by a sample
// generator. Position is in NDC, Color is linear RGB.
type Sample struct {
	Position Vec2
	Color    Vec3
	Alpha    float64
}

// SampleSink accepts generated samples. Implementations must be safe for
// concurrent use; sample order carries no meaning.
type SampleSink interface {
	AddSample(sample Sample)
}
