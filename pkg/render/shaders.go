package render

import (
	"math"

	"github.com/taigrr/starvoyage/pkg/math3d"
	"github.com/taigrr/starvoyage/pkg/noise"
)

// The surface shaders are pure functions from an interpolated
// model-space surface point and the elapsed time to a float RGB color.
// Sphere-like bodies normalize the point to a direction on the unit
// sphere before sampling noise, so the pattern sticks to the surface as
// the body rotates. Every shader clamps its output to a finite display
// range; the star is allowed to run overbright up to 1.5 per channel.
//
// A zero-length surface point cannot be normalized; each shader
// short-circuits it to its base color instead of shading garbage.

// ShadeStar renders the sun: a bright yellow core with fbm turbulence
// pulled toward flame orange and a slow sinusoidal pulse.
func ShadeStar(point Vec3, time float64) Vec3 {
	base := Vec3{X: 1.0, Y: 0.9, Z: 0.3}
	uv := point.Normalize()
	if uv == (Vec3{}) {
		return base
	}

	distToCenter := uv.Len()
	color := base.Scale(1.2 - math.Pow(distToCenter*0.6, 2.0))

	radialGrad := math.Pow(1.0-uv.Len(), 2.5)
	color = color.Lerp(Vec3{X: 1.0, Y: 0.6, Z: 0.1}, radialGrad*0.7)

	const turbulenceFreq = 3.0
	const turbulenceSpeed = 0.5
	turbulence := noise.FBM(uv.Scale(turbulenceFreq).Add(math3d.V3(0, 0, time*turbulenceSpeed)), 2, 0.5, 2.0)
	color = color.Lerp(Vec3{X: 1.0, Y: 0.5, Z: 0.0}, turbulence*0.3)

	pulse := (math.Sin(time*1.5)*0.5+0.5)*0.15 + 0.95
	color = color.Scale(pulse)

	return color.Clamp(0, 1.5)
}

// ShadeRocky renders an earth-like planet: fbm continents over ocean
// with a threshold shoreline and snowy highland detail.
func ShadeRocky(point Vec3, time float64) Vec3 {
	uv := point.Normalize()
	if uv == (Vec3{}) {
		return Vec3{X: 0.1, Y: 0.3, Z: 0.7}
	}

	const baseFreq = 2.0
	n := noise.FBM(uv.Scale(baseFreq), 3, 0.5, 2.0)

	const threshold = 0.5
	isLand := n > threshold

	oceanDeep := Vec3{X: 0.0, Y: 0.1, Z: 0.3}
	oceanShallow := Vec3{X: 0.1, Y: 0.3, Z: 0.7}
	landLow := Vec3{X: 0.1, Y: 0.4, Z: 0.1}
	landHigh := Vec3{X: 0.6, Y: 0.5, Z: 0.3}

	var color Vec3
	if isLand {
		landFactor := (n - threshold) / (1.0 - threshold)
		color = landLow.Lerp(landHigh, math.Pow(landFactor, 0.7))
	} else {
		color = oceanDeep.Lerp(oceanShallow, n/threshold)
	}

	detail := noise.Value3(uv.Scale(5.0).Add(math3d.V3(0, 0, time*0.1)))
	if isLand {
		color = color.Lerp(Vec3{X: 0.9, Y: 0.9, Z: 0.9}, detail*0.15)
	}

	return color.Clamp(0, 1)
}

// ShadeGasGiant renders banded clouds drifting with time plus a fixed
// anticyclone storm in the southern hemisphere.
func ShadeGasGiant(point Vec3, time float64) Vec3 {
	uv := point.Normalize()
	if uv == (Vec3{}) {
		return Vec3{X: 0.8, Y: 0.7, Z: 0.5}
	}

	const bandFreqY = 8.0
	const bandSpeed = 0.2
	const bandNoiseFreq = 15.0

	yComponent := uv.Y + time*bandSpeed*0.1
	bandNoise := noise.Value3(uv.Scale(bandNoiseFreq).Add(math3d.V3(time*bandSpeed, 0, 0)))
	bands := math.Sin(yComponent*bandFreqY + bandNoise*2.0)

	bandColor1 := Vec3{X: 0.8, Y: 0.7, Z: 0.5}
	bandColor2 := Vec3{X: 0.6, Y: 0.4, Z: 0.2}
	color := bandColor1.Lerp(bandColor2, bands*0.5+0.5)

	gasTexture := noise.Value3(uv.Scale(20.0).Add(math3d.V3(time*0.3, 0, 0)))
	color = color.Lerp(Vec3{X: 1, Y: 1, Z: 1}, gasTexture*0.08)

	stormPos := math3d.V3(0, -0.4, 0)
	distToStorm := uv.Sub(stormPos).Len()
	if distToStorm < 0.25 {
		stormFactor := 1.0 - distToStorm/0.25
		stormColor := Vec3{X: 0.95, Y: 0.3, Z: 0.15}
		color = color.Lerp(stormColor, math.Pow(stormFactor, 3.0)*0.6)
	}

	return color.Clamp(0, 1)
}

// ShadeCraftHull is the player craft's flat hull gray. No noise, no
// animation; the cheapest shader in the set.
func ShadeCraftHull(_ Vec3, _ float64) Vec3 {
	return Vec3{X: 0.5, Y: 0.5, Z: 0.5}
}

// ShadeIce renders a frozen world: pale ice crossed by darker cracks,
// dusted with high-frequency snow.
func ShadeIce(point Vec3, time float64) Vec3 {
	iceColor := Vec3{X: 0.8, Y: 0.9, Z: 1.0}
	uv := point.Normalize()
	if uv == (Vec3{}) {
		return iceColor
	}

	const baseFreq = 3.0
	n := noise.FBM(uv.Scale(baseFreq).Add(math3d.V3(0, time*0.05, 0)), 3, 0.5, 2.0)

	crackColor := Vec3{X: 0.3, Y: 0.4, Z: 0.6}
	color := iceColor.Lerp(crackColor, n*0.6)

	detail := noise.Value3(uv.Scale(8.0))
	color = color.Lerp(Vec3{X: 1, Y: 1, Z: 1}, detail*0.3)

	return color.Clamp(0, 1)
}

// ShadeDesert renders a dune world: light and dark sand with a
// sinusoidal dune pattern perturbed by noise.
func ShadeDesert(point Vec3, time float64) Vec3 {
	sandLight := Vec3{X: 0.9, Y: 0.7, Z: 0.3}
	uv := point.Normalize()
	if uv == (Vec3{}) {
		return sandLight
	}

	const baseFreq = 4.0
	n := noise.FBM(uv.Scale(baseFreq).Add(math3d.V3(time*0.02, 0, 0)), 2, 0.6, 2.0)

	sandDark := Vec3{X: 0.6, Y: 0.4, Z: 0.1}
	color := sandDark.Lerp(sandLight, math.Pow(math.Max(0, n), 0.8))

	dunes := math.Sin(uv.Y*10.0+noise.Value3(uv.Scale(6.0))*2.0)*0.5 + 0.5
	color = color.Lerp(Vec3{X: 0.95, Y: 0.8, Z: 0.4}, dunes*0.3)

	return color.Clamp(0, 1)
}

// ShadeVolcanic renders dark rock split by lava fields whose glow
// pulses with time.
func ShadeVolcanic(point Vec3, time float64) Vec3 {
	rockColor := Vec3{X: 0.2, Y: 0.15, Z: 0.1}
	uv := point.Normalize()
	if uv == (Vec3{}) {
		return rockColor
	}

	const baseFreq = 3.0
	n := noise.FBM(uv.Scale(baseFreq), 3, 0.5, 2.0)

	lavaColor := Vec3{X: 1.0, Y: 0.3, Z: 0.0}
	const threshold = 0.45

	var color Vec3
	if n > threshold {
		lavaFactor := (n - threshold) / (1.0 - threshold)
		color = rockColor.Lerp(lavaColor, math.Pow(lavaFactor, 2.0))

		pulse := math.Sin(time*2.0+uv.X*5.0)*0.5 + 0.5
		color = color.Lerp(Vec3{X: 1.0, Y: 0.5, Z: 0.0}, pulse*lavaFactor*0.4)
	} else {
		color = rockColor
		detail := noise.Value3(uv.Scale(10.0))
		color = color.Lerp(Vec3{X: 0.3, Y: 0.25, Z: 0.2}, detail*0.3)
	}

	return color.Clamp(0, 1)
}

// ShadeOcean renders a water world: deep-to-shallow fbm swells, drifting
// wave crests, and scattered islands above a threshold.
func ShadeOcean(point Vec3, time float64) Vec3 {
	deepColor := Vec3{X: 0.0, Y: 0.15, Z: 0.4}
	uv := point.Normalize()
	if uv == (Vec3{}) {
		return deepColor
	}

	n := noise.FBM(uv.Scale(2.5).Add(math3d.V3(time*0.04, 0, 0)), 4, 0.5, 2.0)

	shallowColor := Vec3{X: 0.0, Y: 0.45, Z: 0.7}
	color := deepColor.Lerp(shallowColor, n*0.5+0.5)

	waves := math.Sin(uv.Y*20.0+time*1.2+noise.Value3(uv.Scale(12.0))*3.0)*0.5 + 0.5
	color = color.Lerp(Vec3{X: 0.8, Y: 0.9, Z: 1.0}, waves*0.08)

	island := noise.FBM(uv.Scale(5.0), 3, 0.5, 2.0)
	const islandThreshold = 0.55
	if island > islandThreshold {
		islandFactor := (island - islandThreshold) / (1.0 - islandThreshold)
		color = color.Lerp(Vec3{X: 0.2, Y: 0.5, Z: 0.2}, math.Pow(islandFactor, 0.8))
	}

	return color.Clamp(0, 1)
}

// ShadeAlienPurple renders the alien world: violet terrain threaded with
// brighter veins and a slow planet-wide glow cycle.
func ShadeAlienPurple(point Vec3, time float64) Vec3 {
	baseColor := Vec3{X: 0.4, Y: 0.1, Z: 0.6}
	uv := point.Normalize()
	if uv == (Vec3{}) {
		return baseColor
	}

	n := noise.FBM(uv.Scale(3.0).Add(math3d.V3(0, 0, time*0.03)), 3, 0.5, 2.0)

	veinColor := Vec3{X: 0.8, Y: 0.3, Z: 0.9}
	color := baseColor.Lerp(veinColor, n*0.5+0.5)

	glow := math.Sin(time+uv.X*4.0)*0.5 + 0.5
	color = color.Lerp(Vec3{X: 0.9, Y: 0.5, Z: 1.0}, glow*0.15)

	detail := noise.Value3(uv.Scale(9.0))
	color = color.Lerp(Vec3{X: 0.2, Y: 0.0, Z: 0.3}, detail*0.2)

	return color.Clamp(0, 1)
}

// ShadeRinged renders the turquoise giant: latitude bands like the gas
// giant plus a bright equatorial band standing in for its ring shadow.
func ShadeRinged(point Vec3, time float64) Vec3 {
	bandColor1 := Vec3{X: 0.2, Y: 0.8, Z: 0.75}
	uv := point.Normalize()
	if uv == (Vec3{}) {
		return bandColor1
	}

	bands := math.Sin(uv.Y*12.0 + noise.Value3(uv.Scale(10.0).Add(math3d.V3(time*0.15, 0, 0)))*1.5)

	bandColor2 := Vec3{X: 0.1, Y: 0.5, Z: 0.55}
	color := bandColor1.Lerp(bandColor2, bands*0.5+0.5)

	const ringHalfWidth = 0.1
	if math.Abs(uv.Y) < ringHalfWidth {
		ringFactor := 1.0 - math.Abs(uv.Y)/ringHalfWidth
		color = color.Lerp(Vec3{X: 0.9, Y: 1.0, Z: 0.95}, math.Pow(ringFactor, 2.0)*0.5)
	}

	haze := noise.Value3(uv.Scale(18.0).Add(math3d.V3(time*0.2, 0, 0)))
	color = color.Lerp(Vec3{X: 1, Y: 1, Z: 1}, haze*0.06)

	return color.Clamp(0, 1)
}
