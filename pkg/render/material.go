package render

// Material selects the procedural surface shader for a draw call. It is
// a closed enumeration: shading dispatch is a single switch so adding a
// material without a shader arm is caught at review, not at runtime.
type Material int

const (
	MaterialStar Material = iota
	MaterialRocky
	MaterialGasGiant
	MaterialCraftHull
	MaterialIce
	MaterialDesert
	MaterialVolcanic
	MaterialOcean
	MaterialAlienPurple
	MaterialRinged
)

// String returns the material name for logs and test output.
func (m Material) String() string {
	switch m {
	case MaterialStar:
		return "star"
	case MaterialRocky:
		return "rocky"
	case MaterialGasGiant:
		return "gas-giant"
	case MaterialCraftHull:
		return "craft-hull"
	case MaterialIce:
		return "ice"
	case MaterialDesert:
		return "desert"
	case MaterialVolcanic:
		return "volcanic"
	case MaterialOcean:
		return "ocean"
	case MaterialAlienPurple:
		return "alien-purple"
	case MaterialRinged:
		return "ringed-atmosphere"
	default:
		return "unknown"
	}
}

// neutralGray is the fallback for unrecognized materials.
var neutralGray = Vec3{X: 0.5, Y: 0.5, Z: 0.5}

// Shade maps a fragment's interpolated model-space surface point and
// the elapsed time to a float RGB color for the given material. An
// unrecognized material shades neutral gray.
func Shade(m Material, point Vec3, time float64) Vec3 {
	switch m {
	case MaterialStar:
		return ShadeStar(point, time)
	case MaterialRocky:
		return ShadeRocky(point, time)
	case MaterialGasGiant:
		return ShadeGasGiant(point, time)
	case MaterialCraftHull:
		return ShadeCraftHull(point, time)
	case MaterialIce:
		return ShadeIce(point, time)
	case MaterialDesert:
		return ShadeDesert(point, time)
	case MaterialVolcanic:
		return ShadeVolcanic(point, time)
	case MaterialOcean:
		return ShadeOcean(point, time)
	case MaterialAlienPurple:
		return ShadeAlienPurple(point, time)
	case MaterialRinged:
		return ShadeRinged(point, time)
	default:
		return neutralGray
	}
}
