// Package colors returns wlw.Color values by name, for scene setup code and tests.
package colors

import "github.com/wlwengine/wlw"

// Clear is the default window clear color, a dark slate blue.
func Clear() wlw.Color {
	return wlw.NewColor(0.1, 0.1, 0.15, 1)
}

func Transparent() wlw.Color {
	return wlw.NewColor(0, 0, 0, 0)
}

func White() wlw.Color {
	return wlw.NewColor(1, 1, 1, 1)
}

func Black() wlw.Color {
	return wlw.NewColor(0, 0, 0, 1)
}

func Gray() wlw.Color {
	return wlw.NewColor(0.5, 0.5, 0.5, 1)
}

func Red() wlw.Color {
	return wlw.NewColor(1, 0, 0, 1)
}

func Orange() wlw.Color {
	return wlw.NewColor(1, 0.5, 0, 1)
}

func Yellow() wlw.Color {
	return wlw.NewColor(1, 1, 0, 1)
}

func Green() wlw.Color {
	return wlw.NewColor(0, 1, 0, 1)
}

// SkyBlue is a light blue, used for the demo's ground plane.
func SkyBlue() wlw.Color {
	return wlw.NewColor(0, 0.5, 1, 1)
}

func Blue() wlw.Color {
	return wlw.NewColor(0, 0, 1, 1)
}

func Purple() wlw.Color {
	return wlw.NewColor(0.5, 0, 1, 1)
}
