package asset

import "fmt"

// Resources owns the meshes, materials and spectra shared between scene
// entities. Entities keep plain references into the collection, so it must
// stay alive for as long as any scene built from it.
type Resources struct {
	spectra   map[string]*Spectrum
	materials map[string]*Material
	meshes    map[string]*Mesh
}

// Create an empty resource collection.
func NewResources() *Resources {
	return &Resources{
		spectra:   make(map[string]*Spectrum),
		materials: make(map[string]*Material),
		meshes:    make(map[string]*Mesh),
	}
}

// Register a spectrum under an identifier.
func (r *Resources) AddSpectrum(id string, spectrum *Spectrum) {
	r.spectra[id] = spectrum
}

// Register a material under an identifier.
func (r *Resources) AddMaterial(id string, material *Material) {
	r.materials[id] = material
}

// Register a mesh under an identifier.
func (r *Resources) AddMesh(id string, mesh *Mesh) {
	r.meshes[id] = mesh
}

// Look up a spectrum.
func (r *Resources) Spectrum(id string) (*Spectrum, error) {
	spectrum, exists := r.spectra[id]
	if !exists {
		return nil, fmt.Errorf("unknown spectrum %q", id)
	}
	return spectrum, nil
}

// Look up a material.
func (r *Resources) Material(id string) (*Material, error) {
	material, exists := r.materials[id]
	if !exists {
		return nil, fmt.Errorf("unknown material %q", id)
	}
	return material, nil
}

// Look up a mesh.
func (r *Resources) Mesh(id string) (*Mesh, error) {
	mesh, exists := r.meshes[id]
	if !exists {
		return nil, fmt.Errorf("unknown mesh %q", id)
	}
	return mesh, nil
}
