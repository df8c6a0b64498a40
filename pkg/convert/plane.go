package convert

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"scenetools/pkg/scene"
)

// rotationTolerance is the maximum distance, in degrees, an angle may sit
// from its expected value and still classify.
const rotationTolerance = 0.01

// classifyPlane decides which axis-aligned rectangle a plane node maps to
// by inspecting its rotation. Roll and pitch are recovered from the first
// two diagonal elements of the transform and reduced modulo 180 degrees;
// only the four axis-aligned combinations are accepted:
//
//	roll ~0,  pitch ~0  -> XYRectangle (no rotation)
//	roll ~90, pitch ~0  -> XZRectangle (90 degrees about X)
//	roll ~0,  pitch ~90 -> YZRectangle (90 degrees about Y)
//	roll ~90, pitch ~90 -> YZRectangle (90 degrees about both)
//
// Anything else is an invalid plane rotation. A rotation that puts the
// diagonal outside [-1,1] makes acos return NaN, which fails every
// comparison and lands in the error case as well.
func classifyPlane(m mgl64.Mat4) (string, error) {
	roll := math.Mod(mgl64.RadToDeg(math.Acos(m.At(1, 1))), 180.0)
	pitch := math.Mod(mgl64.RadToDeg(math.Acos(m.At(0, 0))), 180.0)

	rollFlat, rollTurned := near(roll, 0), near(roll, 90)
	pitchFlat, pitchTurned := near(pitch, 0), near(pitch, 90)

	switch {
	case rollFlat && pitchFlat:
		return scene.TypeXYRectangle, nil
	case rollTurned && pitchFlat:
		return scene.TypeXZRectangle, nil
	case rollFlat && pitchTurned:
		return scene.TypeYZRectangle, nil
	case rollTurned && pitchTurned:
		return scene.TypeYZRectangle, nil
	default:
		return "", fmt.Errorf("%w: roll=%.4f pitch=%.4f", ErrInvalidPlaneRotation, roll, pitch)
	}
}

// near reports whether angle is within rotationTolerance of target.
func near(angle, target float64) bool {
	return math.Abs(angle-target) <= rotationTolerance
}
