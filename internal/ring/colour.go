package ring

import "fmt"

// RGB is a colour with 8-bit channels
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Hex returns the colour as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBFromInts builds a colour from a triple, rejecting channels outside [0,255]
func RGBFromInts(channels []int) (RGB, error) {
	if len(channels) != 3 {
		return RGB{}, fmt.Errorf("colour needs 3 channels, got %d", len(channels))
	}
	for i, ch := range channels {
		if ch < 0 || ch > 255 {
			return RGB{}, fmt.Errorf("colour channel %d = %d, want [0,255]", i, ch)
		}
	}
	return RGB{R: uint8(channels[0]), G: uint8(channels[1]), B: uint8(channels[2])}, nil
}

// DefaultPalette holds one colour per month, January first
var DefaultPalette = []RGB{
	{R: 66, G: 135, B: 245},
	{R: 98, G: 160, B: 234},
	{R: 102, G: 187, B: 106},
	{R: 139, G: 195, B: 74},
	{R: 205, G: 220, B: 57},
	{R: 255, G: 235, B: 59},
	{R: 255, G: 193, B: 7},
	{R: 255, G: 152, B: 0},
	{R: 255, G: 87, B: 34},
	{R: 233, G: 30, B: 99},
	{R: 156, G: 39, B: 176},
	{R: 63, G: 81, B: 181},
}
