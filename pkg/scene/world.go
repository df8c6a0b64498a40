package scene

// Object is one renderable primitive in the world list. It is a closed set:
// the only implementations are Sphere, Box and the three axis-aligned
// rectangles, each carrying its objType tag and an embedded material.
type Object interface {
	object()
}

// Object type tags as they appear in the YAML output.
const (
	TypeSphere      = "Sphere"
	TypeBox         = "Box"
	TypeXYRectangle = "XYRectangle"
	TypeXZRectangle = "XZRectangle"
	TypeYZRectangle = "YZRectangle"
)

// Sphere is a sphere given by center and radius.
type Sphere struct {
	ObjType  string   `yaml:"objType"`
	Center   Vec3     `yaml:"center"`
	Radius   Float    `yaml:"radius"`
	Material Material `yaml:"material"`
}

// NewSphere creates a sphere world object.
func NewSphere(center Vec3, radius float64, material Material) *Sphere {
	return &Sphere{
		ObjType:  TypeSphere,
		Center:   center,
		Radius:   Float(radius),
		Material: material,
	}
}

// Box is an axis-aligned box centered on Position.
type Box struct {
	ObjType  string   `yaml:"objType"`
	Position Vec3     `yaml:"position"`
	Width    Float    `yaml:"width"`
	Height   Float    `yaml:"height"`
	Depth    Float    `yaml:"depth"`
	Material Material `yaml:"material"`
}

// NewBox creates a box world object.
func NewBox(position Vec3, width, height, depth float64, material Material) *Box {
	return &Box{
		ObjType:  TypeBox,
		Position: position,
		Width:    Float(width),
		Height:   Float(height),
		Depth:    Float(depth),
		Material: material,
	}
}

// Rectangle is an axis-aligned rectangle centered on Position. ObjType
// selects the plane it lies in (XYRectangle, XZRectangle or YZRectangle);
// the renderer expands Position±Width/2 and Position±Height/2 along the two
// in-plane axes.
type Rectangle struct {
	ObjType  string   `yaml:"objType"`
	Position Vec3     `yaml:"position"`
	Width    Float    `yaml:"width"`
	Height   Float    `yaml:"height"`
	Material Material `yaml:"material"`
}

// NewRectangle creates a rectangle world object with the given plane tag,
// one of TypeXYRectangle, TypeXZRectangle or TypeYZRectangle.
func NewRectangle(objType string, position Vec3, width, height float64, material Material) *Rectangle {
	return &Rectangle{
		ObjType:  objType,
		Position: position,
		Width:    Float(width),
		Height:   Float(height),
		Material: material,
	}
}

func (*Sphere) object()    {}
func (*Box) object()       {}
func (*Rectangle) object() {}
