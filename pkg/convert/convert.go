// Package convert translates a Three.JS JSON scene document into the ray
// tracer's YAML scene description. The translation is a single pass over the
// scene's children: each node either becomes one world object (shapes and
// point lights) or overwrites the camera block (perspective cameras).
package convert

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"scenetools/pkg/scene"
	"scenetools/pkg/threejs"
)

// Conversion errors. All are fatal: the conversion is all-or-nothing and no
// output is produced once any of them is returned.
var (
	ErrNotScene             = errors.New("JSON file is not a Three.JS JSON Scene file")
	ErrUnknownObjectType    = errors.New("unknown object type")
	ErrInvalidPlaneRotation = errors.New("plane has an invalid rotation")
	ErrUnknownGeometry      = errors.New("geometry not found")
	ErrUnknownMaterial      = errors.New("material not found")
)

// Convert maps a scene document onto a renderable scene. Geometry and
// material lookups are built once up front and passed through explicitly;
// the document itself is never modified.
func Convert(doc *threejs.Document) (*scene.Scene, error) {
	if doc == nil || doc.Object.Type != "Scene" {
		return nil, ErrNotScene
	}

	geometries := doc.GeometryIndex()
	materials := doc.MaterialIndex()

	out := scene.New()
	for i := range doc.Object.Children {
		node := &doc.Object.Children[i]
		switch node.Name {
		case "PerspectiveCamera":
			// Cameras produce no world object. Assignment overwrites, so
			// with multiple camera nodes the last one wins.
			applyCamera(&out.Camera, node)
		default:
			obj, err := convertNode(node, geometries, materials)
			if err != nil {
				return nil, err
			}
			out.World = append(out.World, obj)
		}
	}
	return out, nil
}

// convertNode translates a single shape or light node into a world object
// with its material attached. The node's type tag is checked before any
// reference is resolved, so unrecognized nodes fail as unknown types even
// when they carry no geometry or material reference.
func convertNode(node *threejs.Node, geometries map[string]*threejs.Geometry, materials map[string]*threejs.Material) (scene.Object, error) {
	switch node.Name {
	case "PointLight":
		// Point lights never consult the material table: they become unit
		// spheres with a synthesized white emitter scaled by the node
		// intensity.
		light := scene.NewDiffuseLight(scene.NewVec3(1, 1, 1), node.Intensity*10.0)
		return scene.NewSphere(translation(node), 1.0, light), nil
	case "Sphere", "Plane", "Box":
		// Shape nodes resolve their references below.
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, node.Name)
	}

	geom, ok := geometries[node.Geometry]
	if !ok {
		return nil, fmt.Errorf("%w: %q (node %q)", ErrUnknownGeometry, node.Geometry, node.Name)
	}
	material, err := resolveMaterial(node, materials)
	if err != nil {
		return nil, err
	}

	switch node.Name {
	case "Sphere":
		return scene.NewSphere(translation(node), geom.Radius, material), nil
	case "Plane":
		orientation, err := classifyPlane(mgl64.Mat4(node.Matrix))
		if err != nil {
			return nil, err
		}
		return scene.NewRectangle(orientation, translation(node), geom.Width, geom.Height, material), nil
	default: // Box, by the check above
		return scene.NewBox(translation(node), geom.Width, geom.Height, geom.Depth, material), nil
	}
}

// resolveMaterial looks up the node's material record and turns its packed
// 24-bit color into a diffuse material.
func resolveMaterial(node *threejs.Node, materials map[string]*threejs.Material) (scene.Material, error) {
	record, ok := materials[node.Material]
	if !ok {
		return nil, fmt.Errorf("%w: %q (node %q)", ErrUnknownMaterial, node.Material, node.Name)
	}
	return scene.NewLambertian(decodeColor(record.Color)), nil
}

// translation extracts the node's world position: the translation column of
// its column-major 4x4 transform, flat offsets 12..14.
func translation(node *threejs.Node) scene.Vec3 {
	return scene.FromVec(mgl64.Mat4(node.Matrix).Col(3).Vec3())
}

// applyCamera overwrites the camera block from a PerspectiveCamera node.
// The eye sits at the node's translation; the look-at point is placed at
// the focus distance along the matrix's third column, which holds the view
// axis of the camera's local frame.
func applyCamera(cam *scene.Camera, node *threejs.Node) {
	m := mgl64.Mat4(node.Matrix)
	eye := m.Col(3).Vec3()
	cam.LookFrom = scene.FromVec(eye)

	forward := m.Col(2).Vec3()
	if length := forward.Len(); length > 0 {
		cam.LookAt = scene.FromVec(eye.Add(forward.Mul(node.Focus / length)))
	} else {
		// Degenerate transform with no view axis: leave the look-at on
		// the eye and let the renderer's defaults take over.
		cam.LookAt = cam.LookFrom
	}
	cam.Vfov = scene.Float(node.FOV)
	cam.FocusDistance = scene.Float(node.Focus)
}

// decodeColor splits a packed 24-bit RGB value into normalized [0,1]
// channels. Each channel is one byte of the masked value, so colors with
// leading zero channels decode correctly.
func decodeColor(color uint32) scene.Vec3 {
	return scene.NewVec3(
		float64(color>>16&0xFF)/255.0,
		float64(color>>8&0xFF)/255.0,
		float64(color&0xFF)/255.0,
	)
}
