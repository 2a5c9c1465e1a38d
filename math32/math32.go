// Package math32 holds the float32 math helpers used throughout wlw. Trigonometry and roots are
// forwarded to github.com/chewxy/math32 so that vectors and matrices never round-trip through float64.
package math32

import (
	cmath "github.com/chewxy/math32"
)

const (
	MaxFloat32 = cmath.MaxFloat32
	Pi         = cmath.Pi
)

// ToRadians converts degrees to radians. Node rotations are stored in degrees and converted here
// when the model matrix is rebuilt.
func ToRadians(degrees float32) float32 {
	return Pi * degrees / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float32) float32 {
	return radians / Pi * 180
}

// Min returns the minimum value out of two provided values.
func Min[number float32 | float64 | int | int32 | int64](x, y number) number {
	if x < y {
		return x
	}
	return y
}

// Max returns the maximum value out of two provided values.
func Max[number float32 | float64 | int | int32 | int64](x, y number) number {
	if x > y {
		return x
	}
	return y
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number float32 | float64 | int | int32 | int64](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Lerp linearly interpolates from a to b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Sign returns 1 for positive values, -1 for negative values and 0 otherwise.
func Sign(f float32) float32 {
	if f > 0 {
		return 1
	} else if f < 0 {
		return -1
	}
	return 0
}

func IsNaN(x float32) bool {
	return cmath.IsNaN(x)
}

func IsInf(x float32, sign int) bool {
	return cmath.IsInf(x, sign)
}

func Inf(sign int) float32 {
	return cmath.Inf(sign)
}

func Sqrt(x float32) float32 {
	return cmath.Sqrt(x)
}

func Sin(x float32) float32 {
	return cmath.Sin(x)
}

func Cos(x float32) float32 {
	return cmath.Cos(x)
}

func Tan(x float32) float32 {
	return cmath.Tan(x)
}

func Abs(x float32) float32 {
	return cmath.Abs(x)
}

func Floor(x float32) float32 {
	return cmath.Floor(x)
}

func Ceil(x float32) float32 {
	return cmath.Ceil(x)
}

// Pow returns x**y.
func Pow(x, y float32) float32 {
	return cmath.Pow(x, y)
}

// Mod returns the floating-point remainder of x/y.
func Mod(x, y float32) float32 {
	return cmath.Mod(x, y)
}

// Wrap wraps x into the range [0, 1), which is how repeat-addressed texture coordinates behave.
func Wrap(x float32) float32 {
	x -= cmath.Floor(x)
	if x >= 1 {
		return 0
	}
	return x
}
