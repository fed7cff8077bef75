package component

// Color is an 8-bit RGBA colour. Config files use the same field names.
type Color struct {
	R uint8 `toml:"r"`
	G uint8 `toml:"g"`
	B uint8 `toml:"b"`
	A uint8 `toml:"a"`
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Shape describes how an entity is drawn. Points doubles as the number of
// fragments a large enemy breaks into.
type Shape struct {
	Radius           float32
	Points           int
	Fill             Color
	Outline          Color
	OutlineThickness float32
}
