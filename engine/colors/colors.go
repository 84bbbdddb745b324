package colors

import "math"

// Color is an RGBA color with channels in [0..1].
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

// Packed ARGB colors used by the panel chrome.
const (
	PackedWhite     uint32 = 0xFFFFFFFF
	PackedRed       uint32 = 0xFFFF0000
	PackedPanel     uint32 = 0xE61F1F1F // (31,31,31,230)
	PackedPanelHot  uint32 = 0xE62D2D2D
	PackedTitle     uint32 = 0xF0141414
	PackedAccent    uint32 = 0xFFE04848
	PackedTrack     uint32 = 0xFF3A3A3A
	PackedShadow    uint32 = 0xFF3F3F3F
	PackedIndicator uint32 = 0xFF5A5A5A
)

// ARGB packs four byte channels as (a<<24)|(r<<16)|(g<<8)|b.
func ARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Channels splits a packed color: alpha bits 24-31, red 16-23, green 8-15, blue 0-7.
func Channels(c uint32) (a, r, g, b uint8) {
	return uint8(c >> 24 & 0xFF), uint8(c >> 16 & 0xFF), uint8(c >> 8 & 0xFF), uint8(c & 0xFF)
}

// FromARGB converts a packed ARGB color into float channels.
func FromARGB(c uint32) Color {
	a, r, g, b := Channels(c)
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// ARGB packs the color back into a 32-bit ARGB value.
func (c Color) ARGB() uint32 {
	return ARGB(toByte(c[3]), toByte(c[0]), toByte(c[1]), toByte(c[2]))
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

func toByte(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(math.Round(float64(f) * 255))
}
