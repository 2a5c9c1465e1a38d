package wlw

import "fmt"

// Lighting describes the single point light a draw call is lit by.
type Lighting struct {
	Position        Vector3
	Color           Color   // Color of the specular highlight. Defaults to white.
	AmbientStrength float32 // How much of the surface color is visible without direct light.
	Shininess       float32 // Specular exponent; higher values give tighter highlights.
}

// NewLighting returns a white point light at the position given.
func NewLighting(position Vector3, ambientStrength, shininess float32) Lighting {
	return Lighting{
		Position:        position,
		Color:           NewColor(1, 1, 1, 1),
		AmbientStrength: ambientStrength,
		Shininess:       shininess,
	}
}

// Material holds the shading parameters bound before drawing a mesh: an optional texture, an optional point light,
// a base color and metallic / roughness factors. A Material can be shared by any number of meshes and nodes.
type Material struct {
	Name      string
	Color     Color // The overall color of the Material.
	Metallic  float32
	Roughness float32

	texture  *Texture
	lighting *Lighting

	handle TextureHandle
}

// NewMaterial creates a new white, untextured and unlit Material with the name given.
func NewMaterial(name string) *Material {
	return &Material{
		Name:      name,
		Color:     NewColor(1, 1, 1, 1),
		Metallic:  0,
		Roughness: 1,
	}
}

// Texture returns the Material's texture, or nil.
func (material *Material) Texture() *Texture {
	return material.texture
}

// HasTexture returns whether a texture is set on the Material.
func (material *Material) HasTexture() bool {
	return material.texture != nil
}

// SetTexture sets the texture the Material samples. Replacing the texture frees any backend texture created for
// the previous one; the new texture is uploaded the next time the Material is bound.
func (material *Material) SetTexture(texture *Texture) {
	if material.texture == texture {
		return
	}
	material.Release()
	material.texture = texture
}

// Lighting returns the Material's light, or nil if the Material is unlit.
func (material *Material) Lighting() *Lighting {
	return material.lighting
}

// HasLighting returns whether the Material is lit.
func (material *Material) HasLighting() bool {
	return material.lighting != nil
}

// SetLighting enables lighting for the Material, copying the light given.
func (material *Material) SetLighting(lighting Lighting) {
	material.lighting = &lighting
}

// ClearLighting disables lighting for the Material.
func (material *Material) ClearLighting() {
	material.lighting = nil
}

// TextureHandle returns the backend texture created for the Material, or nil if none has been generated yet.
func (material *Material) TextureHandle() TextureHandle {
	return material.handle
}

// GenerateTexture uploads the Material's texture through the uploader given. The upload happens at most once per
// texture: later calls return the handle created by the first one.
func (material *Material) GenerateTexture(uploader TextureUploader) (TextureHandle, error) {

	if failIf(material.texture == nil, "cannot generate texture for material without one", "material", material.Name) {
		return nil, ErrNilTexture
	}

	if material.handle != nil {
		return material.handle, nil
	}

	handle, err := uploader.CreateTexture(material.texture, DefaultSamplerOptions)
	if err != nil {
		return nil, fmt.Errorf("wlw: generate texture for material %q: %w", material.Name, err)
	}

	material.handle = handle
	return handle, nil

}

// Release frees the backend texture created for the Material, if any.
func (material *Material) Release() {
	if material.handle != nil {
		material.handle.Release()
		material.handle = nil
	}
}
