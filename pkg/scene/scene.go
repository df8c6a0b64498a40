// Package scene models the YAML scene description consumed by the ray
// tracer: a block of render constants, a camera, and a flat world list of
// tagged renderable objects.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Constants are the render settings emitted at the top of every scene file.
type Constants struct {
	Width                int   `yaml:"width"`
	Height               int   `yaml:"height"`
	SamplesPerPixel      int   `yaml:"samplesPerPixel"`
	MaxDepth             int   `yaml:"maxDepth"`
	MinDepth             int   `yaml:"minDepth"`
	EnvironmentIntensity Float `yaml:"environmentIntensity"`
	SourcesLambda        Float `yaml:"sourcesLambda"`
	PowerRenderCenter    Vec3  `yaml:"powerRenderCenter"`
}

// DefaultConstants returns the fixed render settings written for every
// converted scene. sourcesLambda is the wavelength of a 2.45 GHz source.
func DefaultConstants() Constants {
	return Constants{
		Width:                800,
		Height:               800,
		SamplesPerPixel:      32,
		MaxDepth:             5000,
		MinDepth:             5,
		EnvironmentIntensity: 0.25,
		SourcesLambda:        0.122364268571,
		PowerRenderCenter:    NewVec3(0, 0, 0),
	}
}

// Camera holds the viewpoint parameters for the render.
type Camera struct {
	LookFrom      Vec3  `yaml:"lookFrom"`
	LookAt        Vec3  `yaml:"lookAt"`
	Vup           Vec3  `yaml:"vup"`
	Vfov          Float `yaml:"vfov"`
	AspectRatio   Float `yaml:"aspectRatio"`
	Aperture      Float `yaml:"aperture"`
	FocusDistance Float `yaml:"focusDistance"`
}

// DefaultCamera returns the camera written when the input scene contains no
// camera node: both points at the origin, Y up, 90 degree field of view.
func DefaultCamera() Camera {
	return Camera{
		LookFrom:      NewVec3(0, 0, 0),
		LookAt:        NewVec3(0, 0, 0),
		Vup:           NewVec3(0, 1, 0),
		Vfov:          90,
		AspectRatio:   1.0,
		Aperture:      0.1,
		FocusDistance: 10,
	}
}

// Scene is the complete output document.
type Scene struct {
	Constants Constants `yaml:"constants"`
	Camera    Camera    `yaml:"camera"`
	World     []Object  `yaml:"world"`
}

// New returns a scene with default constants and camera and an empty world.
func New() *Scene {
	return &Scene{
		Constants: DefaultConstants(),
		Camera:    DefaultCamera(),
		World:     []Object{},
	}
}

// Marshal serializes the scene to YAML. Struct field order fixes the key
// order, so identical scenes serialize to identical bytes.
func (s *Scene) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scene: %w", err)
	}
	return out, nil
}

// WriteFile serializes the scene and writes it to filename, overwriting any
// existing file. Nothing is written if serialization fails.
func (s *Scene) WriteFile(filename string) error {
	out, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, out, 0644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	return nil
}
