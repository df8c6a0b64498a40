package scene

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConstants(t *testing.T) {
	c := DefaultConstants()
	assert.Equal(t, 800, c.Width)
	assert.Equal(t, 800, c.Height)
	assert.Equal(t, 32, c.SamplesPerPixel)
	assert.Equal(t, 5000, c.MaxDepth)
	assert.Equal(t, 5, c.MinDepth)
	assert.Equal(t, Float(0.25), c.EnvironmentIntensity)
	assert.Equal(t, Float(0.122364268571), c.SourcesLambda)
	assert.Equal(t, NewVec3(0, 0, 0), c.PowerRenderCenter)
}

func TestDefaultCamera(t *testing.T) {
	cam := DefaultCamera()
	assert.Equal(t, NewVec3(0, 1, 0), cam.Vup)
	assert.Equal(t, Float(90), cam.Vfov)
	assert.Equal(t, Float(1.0), cam.AspectRatio)
	assert.Equal(t, Float(0.1), cam.Aperture)
	assert.Equal(t, Float(10), cam.FocusDistance)
}

func TestMarshalEmptyScene(t *testing.T) {
	out, err := New().Marshal()
	require.NoError(t, err)
	text := string(out)

	// Top-level keys in renderer order.
	constantsAt := strings.Index(text, "constants:")
	cameraAt := strings.Index(text, "camera:")
	worldAt := strings.Index(text, "world:")
	assert.GreaterOrEqual(t, constantsAt, 0)
	assert.Greater(t, cameraAt, constantsAt)
	assert.Greater(t, worldAt, cameraAt)

	assert.Contains(t, text, "width: 800")
	assert.Contains(t, text, "samplesPerPixel: 32")
	assert.Contains(t, text, "world: []")
}

func TestMarshalFloatsKeepDecimalPoint(t *testing.T) {
	out, err := New().Marshal()
	require.NoError(t, err)
	text := string(out)

	// The renderer's parser reads these with as_f64, so whole numbers must
	// not serialize as integers.
	assert.Contains(t, text, "vfov: 90.0")
	assert.Contains(t, text, "focusDistance: 10.0")
	assert.Contains(t, text, "aspectRatio: 1.0")
	assert.Contains(t, text, "environmentIntensity: 0.25")
}

func TestMarshalVectorsUseFlowStyle(t *testing.T) {
	out, err := New().Marshal()
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "vup: [0.0, 1.0, 0.0]")
	assert.Contains(t, text, "lookFrom: [0.0, 0.0, 0.0]")
	assert.Contains(t, text, "powerRenderCenter: [0.0, 0.0, 0.0]")
}

func TestMarshalWorldObjects(t *testing.T) {
	s := New()
	s.World = append(s.World,
		NewSphere(NewVec3(1, 2, 3), 1.5, NewLambertian(NewVec3(1, 0, 0))),
		NewRectangle(TypeXZRectangle, NewVec3(0, 5, 0), 4, 2, NewDiffuseLight(NewVec3(1, 1, 1), 20)),
		NewBox(NewVec3(-1, 0, 0), 2, 3, 4, NewLambertian(NewVec3(0.5, 0.5, 0.5))),
	)

	out, err := s.Marshal()
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "objType: Sphere")
	assert.Contains(t, text, "center: [1.0, 2.0, 3.0]")
	assert.Contains(t, text, "radius: 1.5")
	assert.Contains(t, text, "matType: Lambertian")
	assert.Contains(t, text, "texType: SolidColor")
	assert.Contains(t, text, "albedo: [1.0, 0.0, 0.0]")

	assert.Contains(t, text, "objType: XZRectangle")
	assert.Contains(t, text, "matType: DiffuseLight")
	assert.Contains(t, text, "intensity: 20.0")

	assert.Contains(t, text, "objType: Box")
	assert.Contains(t, text, "depth: 4.0")

	// Lambertian materials never carry an intensity.
	assert.Equal(t, 1, strings.Count(text, "intensity:"))
}

func TestMarshalDeterministic(t *testing.T) {
	s := New()
	s.World = append(s.World,
		NewSphere(NewVec3(0, 1, 0), 2, NewLambertian(NewVec3(0.2, 0.4, 0.6))),
	)

	first, err := s.Marshal()
	require.NoError(t, err)
	second, err := s.Marshal()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteFile(t *testing.T) {
	path := t.TempDir() + "/out.yaml"
	s := New()
	require.NoError(t, s.WriteFile(path))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	expected, err := s.Marshal()
	require.NoError(t, err)
	assert.Equal(t, expected, written)

	// Writing again overwrites silently and reproduces the same bytes.
	require.NoError(t, s.WriteFile(path))
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, written, again)
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{90, "90.0"},
		{-3, "-3.0"},
		{0.25, "0.25"},
		{1.5, "1.5"},
		{0.122364268571, "0.122364268571"},
		{1e21, "1e+21"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFloat(tt.in), "formatFloat(%v)", tt.in)
	}
}
