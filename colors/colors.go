package colors

// package colors contains functions to quickly generate gasket.Color instances by name (i.e. "Black()", "Gasket()", etc).

import "github.com/solarlune/gasket"

// White generates a gasket.Color instance of the provided name.
func White() gasket.Color {
	return gasket.NewColor(1, 1, 1, 1)
}

// Black generates a gasket.Color instance of the provided name. It's the color the framebuffer is cleared to.
func Black() gasket.Color {
	return gasket.NewColor(0, 0, 0, 1)
}

// Gasket generates the yellow-ish gasket.Color the fractal is filled with.
func Gasket() gasket.Color {
	return gasket.FillColor()
}
