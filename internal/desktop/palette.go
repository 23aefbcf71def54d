package desktop

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Grass RGB
	Head  RGB
	Body  RGB
	Food  RGB
}{
	Grass: RGB{R: 53, G: 112, B: 37},
	Head:  RGB{R: 48, G: 199, B: 6},
	Body:  RGB{R: 37, G: 163, B: 2},
	Food:  RGB{R: 21, G: 59, B: 11},
}
