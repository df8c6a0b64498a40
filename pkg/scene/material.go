package scene

// Material is the shading behavior attached to a world object. It is a
// closed set: Lambertian for diffuse surfaces, DiffuseLight for emitters.
type Material interface {
	material()
}

// Material and texture type tags as they appear in the YAML output.
const (
	MatLambertian   = "Lambertian"
	MatDiffuseLight = "DiffuseLight"
	TexSolidColor   = "SolidColor"
)

// SolidColor is a constant-color texture.
type SolidColor struct {
	Albedo Vec3 `yaml:"albedo"`
}

// Lambertian is a perfectly diffuse material with a solid-color albedo.
type Lambertian struct {
	MatType string     `yaml:"matType"`
	TexType string     `yaml:"texType"`
	Texture SolidColor `yaml:"texture"`
}

// NewLambertian creates a diffuse material with the given albedo, each
// channel in [0,1].
func NewLambertian(albedo Vec3) *Lambertian {
	return &Lambertian{
		MatType: MatLambertian,
		TexType: TexSolidColor,
		Texture: SolidColor{Albedo: albedo},
	}
}

// DiffuseLight is an emissive material: a solid-color emitter scaled by
// Intensity.
type DiffuseLight struct {
	MatType   string     `yaml:"matType"`
	TexType   string     `yaml:"texType"`
	Texture   SolidColor `yaml:"texture"`
	Intensity Float      `yaml:"intensity"`
}

// NewDiffuseLight creates an emissive material with the given color and
// intensity.
func NewDiffuseLight(albedo Vec3, intensity float64) *DiffuseLight {
	return &DiffuseLight{
		MatType:   MatDiffuseLight,
		TexType:   TexSolidColor,
		Texture:   SolidColor{Albedo: albedo},
		Intensity: Float(intensity),
	}
}

func (*Lambertian) material()   {}
func (*DiffuseLight) material() {}
