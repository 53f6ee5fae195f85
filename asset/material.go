package asset

// MaterialKind enumerates the closed set of surface material variants.
type MaterialKind uint8

const (
	// Opaque material.
	Diffuse MaterialKind = iota
	// Partially reflective material.
	Reflective
	// Partially reflective, partially transmissive material.
	Refractive
)

// Material describes how a surface interacts with light. Materials are shared
// read-only between entities; construct them once and never mutate them.
type Material struct {
	kind            MaterialKind
	spectrum        *Spectrum
	absorption      float64
	refractiveIndex float64
}

// Create a new diffuse material.
func NewDiffuse(spectrum *Spectrum) *Material {
	return &Material{kind: Diffuse, spectrum: spectrum, absorption: 1.0}
}

// Create a new reflective material. Absorption must be in [0, 1].
func NewReflective(spectrum *Spectrum, absorption float64) *Material {
	return &Material{kind: Reflective, spectrum: spectrum, absorption: absorption}
}

// Create a new refractive material. Absorption must be in [0, 1] and the
// refractive index must be at least 1.
func NewRefractive(spectrum *Spectrum, absorption, refractiveIndex float64) *Material {
	return &Material{
		kind:            Refractive,
		spectrum:        spectrum,
		absorption:      absorption,
		refractiveIndex: refractiveIndex,
	}
}

// Get the material variant.
func (m *Material) Kind() MaterialKind {
	return m.kind
}

// Get the colour spectrum.
func (m *Material) Spectrum() *Spectrum {
	return m.spectrum
}

// Get the absorption coefficient. Diffuse surfaces absorb everything.
func (m *Material) Absorption() float64 {
	return m.absorption
}

// Get the refractive index. Only meaningful for refractive materials.
func (m *Material) RefractiveIndex() float64 {
	return m.refractiveIndex
}
