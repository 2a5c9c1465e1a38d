package wlw

import "github.com/wlwengine/wlw/math32"

// Shade returns the final color of a surface point drawn with state. surface is the sampled texture color (or the
// vertex color when state has no texture), position and normal are in world space.
//
// Without lighting the surface color is tinted by ObjectColor and returned as is. With lighting the result is
// ambient + diffuse + specular, where the specular highlight takes the light's color, and alpha is 1.
func (state *DrawState) Shade(surface Color, position, normal Vector3) Color {

	c := surface.MultRGB(state.ObjectColor)
	c.A *= state.ObjectColor.A

	if !state.UseLighting {
		return c
	}

	base := c.RGB()
	n := normal.Unit()
	lightDir := state.LightPosition.Sub(position).Unit()

	ambient := base.Scale(state.AmbientStrength)
	diffuse := base.Scale(max(n.Dot(lightDir), 0))

	viewDir := state.ViewPosition.Sub(position).Unit()
	reflectDir := lightDir.Invert().Reflect(n)
	spec := math32.Pow(max(viewDir.Dot(reflectDir), 0), state.Shininess)
	specular := state.LightColor.RGB().Scale(spec)

	result := ambient.Add(diffuse).Add(specular)
	return Color{result.X, result.Y, result.Z, 1}

}
