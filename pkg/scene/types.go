package scene

import "math"

// Vec3 is a point or direction in the engine's right-handed coordinate space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Mul returns v scaled component-wise by o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// One returns the unit scale vector (1, 1, 1).
func One() Vec3 {
	return Vec3{1, 1, 1}
}

// Quat is a rotation quaternion. The zero value is not a valid rotation;
// use Identity or EulerDeg.
type Quat struct {
	X, Y, Z, W float64
}

// Identity returns the no-rotation quaternion.
func Identity() Quat {
	return Quat{W: 1}
}

// EulerDeg builds a rotation from Tait-Bryan angles in degrees, applied in
// Y-X-Z order (yaw, then pitch, then roll). This matches the convention most
// scene backends expose in their authoring tools.
func EulerDeg(x, y, z float64) Quat {
	hx := x * math.Pi / 360
	hy := y * math.Pi / 360
	hz := z * math.Pi / 360

	sx, cx := math.Sin(hx), math.Cos(hx)
	sy, cy := math.Sin(hy), math.Cos(hy)
	sz, cz := math.Sin(hz), math.Cos(hz)

	qx := Quat{X: sx, W: cx}
	qy := Quat{Y: sy, W: cy}
	qz := Quat{Z: sz, W: cz}
	return qy.Mul(qx).Mul(qz)
}

// Mul returns the composed rotation q then o (o applied in q's local frame).
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Rotate applies the rotation to a vector.
func (q Quat) Rotate(v Vec3) Vec3 {
	// v' = q * (v, 0) * q^-1, expanded to avoid the intermediate quaternions.
	tx := 2 * (q.Y*v.Z - q.Z*v.Y)
	ty := 2 * (q.Z*v.X - q.X*v.Z)
	tz := 2 * (q.X*v.Y - q.Y*v.X)
	return Vec3{
		X: v.X + q.W*tx + q.Y*tz - q.Z*ty,
		Y: v.Y + q.W*ty + q.Z*tx - q.X*tz,
		Z: v.Z + q.W*tz + q.X*ty - q.Y*tx,
	}
}

// Transform is a node's local position, rotation, and scale relative to its
// parent.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// NewTransform returns an identity transform (zero position, no rotation,
// unit scale).
func NewTransform() Transform {
	return Transform{Rotation: Identity(), Scale: One()}
}

// Size is the footprint of a node or cell. Width and Height span the panel
// plane; Depth is the thickness perpendicular to it.
type Size struct {
	Width, Height, Depth float64
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// White is the default text color.
var White = Color{1, 1, 1, 1}

// Material describes the surface appearance applied to a visual node.
type Material struct {
	Name  string
	Color Color
}

// CollisionLayer selects which collider group an interactive node joins.
type CollisionLayer string

const (
	// LayerDefault is the backend's default collision layer.
	LayerDefault CollisionLayer = "default"
	// LayerUI is the dedicated interaction layer for panel elements, kept
	// separate so UI ray-casts never collide with world geometry.
	LayerUI CollisionLayer = "ui"
)

// TextAnchor positions text relative to its node origin.
type TextAnchor string

const (
	AnchorMiddleCenter TextAnchor = "middle-center"
	AnchorTopLeft      TextAnchor = "top-left"
	AnchorBottomCenter TextAnchor = "bottom-center"
)

// BoxSpec describes a box-shaped visual node at creation time.
type BoxSpec struct {
	Size     Size
	Material *Material
	Collider bool
	Layer    CollisionLayer
	// Props carries host-backend properties passed through untouched.
	Props map[string]string
}

// TextSpec describes a text-bearing node at creation time.
type TextSpec struct {
	Contents string
	Height   float64
	Anchor   TextAnchor
	Color    Color
	Props    map[string]string
}
