// Package threejs models the Three.JS JSON scene export format and loads it
// from disk. Only the subset of the format used by the scene translator is
// represented: the root object with its children, plus the shared geometry
// and material tables.
package threejs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Document is the root of a Three.JS JSON scene export.
type Document struct {
	Object     Object     `json:"object"`
	Geometries []Geometry `json:"geometries"`
	Materials  []Material `json:"materials"`
}

// Object is the root scene object. Its Type must be "Scene" for the document
// to be convertible.
type Object struct {
	Type     string `json:"type"`
	Children []Node `json:"children"`
}

// Node is a single child of the scene. Name doubles as the type tag
// (Sphere, Plane, Box, PerspectiveCamera, PointLight). Matrix is the node's
// 4x4 world transform as a flat 16-element list in column-major order, so
// the translation lives at offsets 12..14 and the view direction column at
// offsets 8..10.
type Node struct {
	Name     string      `json:"name"`
	Matrix   [16]float64 `json:"matrix"`
	Geometry string      `json:"geometry"` // geometry UUID, shape nodes only
	Material string      `json:"material"` // material UUID, shape nodes only

	// Camera-only fields
	FOV   float64 `json:"fov"`
	Focus float64 `json:"focus"`

	// Light-only fields
	Intensity float64 `json:"intensity"`
}

// Geometry is a shared shape descriptor referenced by UUID from shape nodes.
// Which dimension fields are meaningful depends on Type (SphereGeometry,
// PlaneGeometry, BoxGeometry).
type Geometry struct {
	UUID   string  `json:"uuid"`
	Type   string  `json:"type"`
	Radius float64 `json:"radius"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Material is a shared surface descriptor referenced by UUID from shape
// nodes. Color is a packed 24-bit RGB value.
type Material struct {
	UUID  string `json:"uuid"`
	Type  string `json:"type"`
	Color uint32 `json:"color"`
}

// Decode reads a scene document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode scene JSON: %w", err)
	}
	return &doc, nil
}

// Load reads and decodes a scene document from a file.
func Load(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// GeometryIndex builds a UUID -> geometry lookup from the document's flat
// geometry list. Duplicate UUIDs are not validated; the last record wins.
func (d *Document) GeometryIndex() map[string]*Geometry {
	index := make(map[string]*Geometry, len(d.Geometries))
	for i := range d.Geometries {
		index[d.Geometries[i].UUID] = &d.Geometries[i]
	}
	return index
}

// MaterialIndex builds a UUID -> material lookup from the document's flat
// material list. Duplicate UUIDs are not validated; the last record wins.
func (d *Document) MaterialIndex() map[string]*Material {
	index := make(map[string]*Material, len(d.Materials))
	for i := range d.Materials {
		index[d.Materials[i].UUID] = &d.Materials[i]
	}
	return index
}
