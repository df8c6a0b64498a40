package scene

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Float is a float64 that always serializes with a decimal point or
// exponent. The renderer's YAML parser is strictly typed and reads scalars
// like vfov with as_f64, which rejects plain integers, so "90" must be
// written as "90.0".
type Float float64

// MarshalYAML implements yaml.Marshaler.
func (f Float) MarshalYAML() (interface{}, error) {
	return floatNode(float64(f)), nil
}

// Vec3 is a three-component vector serialized as a YAML flow sequence of
// floats, e.g. [0.0, 1.0, 0.0]. It is backed by mgl64.Vec3 so callers can
// move between the two freely.
type Vec3 mgl64.Vec3

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// FromVec converts an mgl64 vector.
func FromVec(v mgl64.Vec3) Vec3 {
	return Vec3(v)
}

// Vec returns the vector as an mgl64.Vec3.
func (v Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

// MarshalYAML implements yaml.Marshaler.
func (v Vec3) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v {
		node.Content = append(node.Content, floatNode(c))
	}
	return node, nil
}

func floatNode(f float64) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!float",
		Value: formatFloat(f),
	}
}

// formatFloat renders f in the shortest form that still parses as a float:
// a bare "90" becomes "90.0" so strictly typed YAML readers do not resolve
// it as an integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
