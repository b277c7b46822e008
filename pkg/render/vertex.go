package render

import (
	"github.com/taigrr/starvoyage/pkg/math3d"
)

// Local aliases: the render package is written almost entirely in terms
// of these types.
type (
	Vec2 = math3d.Vec2
	Vec3 = math3d.Vec3
	Vec4 = math3d.Vec4
	Mat4 = math3d.Mat4
)

// Vertex carries one mesh vertex through the pipeline. Position, Normal
// and UV are the model-space attributes set at load time; Clip and
// WorldNormal are populated fresh each frame by TransformVertex and
// never mutated elsewhere.
type Vertex struct {
	Position Vec3 // Model-space position
	Normal   Vec3 // Model-space normal
	UV       Vec2 // Texture coordinate (carried, unused by shading)

	Clip        Vec4 // Clip-space position (homogeneous)
	WorldNormal Vec3 // Unit normal after the normal-matrix transform
}

// Uniforms bundles the per-draw-call state. It is immutable for the
// duration of one RenderModel call and is always passed explicitly,
// never stored as ambient state.
type Uniforms struct {
	Model      Mat4
	View       Mat4
	Projection Mat4
	Viewport   Mat4

	Time     float64  // Elapsed seconds, monotonically increasing
	Material Material // Surface type for fragment shading
}

// TransformVertex runs the vertex stage: clip position is
// Projection·View·Model·[position,1], and the normal is transformed by
// the inverse transpose of the model matrix's upper-left 3x3. A singular
// model submatrix (degenerate scale) falls back to the identity normal
// matrix rather than propagating NaN; normals are then visually wrong
// but every downstream value stays finite.
func TransformVertex(v Vertex, u Uniforms) Vertex {
	clip := u.Projection.Mul(u.View).Mul(u.Model).MulVec4(math3d.V4FromV3(v.Position, 1))

	normalMatrix, ok := u.Model.UpperLeft().Transpose().Inverse()
	if !ok {
		normalMatrix = math3d.Identity3()
	}
	worldNormal := normalMatrix.MulVec3(v.Normal).Normalize()

	out := v
	out.Clip = clip
	out.WorldNormal = worldNormal
	return out
}
