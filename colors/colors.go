// Package colors contains functions to quickly and easily generate softrast.Color instances by name (i.e. "White()", "Blue()", "Midnight()", etc).
package colors

import "github.com/solarlune/softrast"

// Transparent generates a softrast.Color instance of the provided name.
func Transparent() softrast.Color {
	return softrast.NewColor(0, 0, 0, 0)
}

// White generates a softrast.Color instance of the provided name.
func White() softrast.Color {
	return softrast.NewColor(1, 1, 1, 1)
}

// Black generates a softrast.Color instance of the provided name.
func Black() softrast.Color {
	return softrast.NewColor(0, 0, 0, 1)
}

// Gray generates a softrast.Color instance of the provided name.
func Gray() softrast.Color {
	return softrast.NewColor(0.5, 0.5, 0.5, 1)
}

// DarkGray generates a softrast.Color instance of the provided name.
func DarkGray() softrast.Color {
	return softrast.NewColor(0.25, 0.25, 0.25, 1)
}

// Red generates a softrast.Color instance of the provided name.
func Red() softrast.Color {
	return softrast.NewColor(1, 0, 0, 1)
}

// Orange generates a softrast.Color instance of the provided name.
func Orange() softrast.Color {
	return softrast.NewColor(1, 0.5, 0, 1)
}

// Yellow generates a softrast.Color instance of the provided name.
func Yellow() softrast.Color {
	return softrast.NewColor(1, 1, 0, 1)
}

// Green generates a softrast.Color instance of the provided name.
func Green() softrast.Color {
	return softrast.NewColor(0, 1, 0, 1)
}

// Grass is the default terrain color.
func Grass() softrast.Color {
	return softrast.NewColorFromRGB8(70, 140, 60)
}

// SkyBlue generates a softrast.Color instance of the provided name.
func SkyBlue() softrast.Color {
	return softrast.NewColor(0, 0.5, 1, 1)
}

// Blue generates a softrast.Color instance of the provided name.
func Blue() softrast.Color {
	return softrast.NewColor(0, 0, 1, 1)
}

// Midnight is the dark blue used to clear the viewer's background.
func Midnight() softrast.Color {
	return softrast.NewColorFromRGB8(15, 20, 45)
}

// Pink generates a softrast.Color instance of the provided name.
func Pink() softrast.Color {
	return softrast.NewColor(1, 0, 1, 1)
}

// Purple generates a softrast.Color instance of the provided name.
func Purple() softrast.Color {
	return softrast.NewColor(0.5, 0, 1, 1)
}
