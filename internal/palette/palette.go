package palette

import (
	"fmt"
	"strconv"
	"unicode/utf16"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	Saturation = 0.7
	Lightness  = 0.5
)

// Color is an RGBA color. Alpha is carried exactly as supplied.
type Color struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// String renders the color the way chart libraries expect it: rgba(r, g, b, a).
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Pair holds the fill and stroke colors of one label. Both share the same hue.
type Pair struct {
	Fill   Color `json:"fill"`
	Stroke Color `json:"stroke"`
}

// Hash is the polynomial string hash hash*31 + code over the UTF-16 code units
// of label, in int32 with two's-complement wraparound.
func Hash(label string) int32 {
	var h int32
	for _, code := range utf16.Encode([]rune(label)) {
		h = h*31 + int32(code)
	}
	return h
}

// Hue returns the hue in degrees [0, 360) assigned to label.
func Hue(label string) int {
	return hueOf(Hash(label))
}

// hueOf widens to int64 first so that |math.MinInt32| is defined.
func hueOf(hash int32) int {
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return int(h % 360)
}

// Assign maps label to a stable color with the given alpha. It never fails;
// alpha is not validated or clamped.
func Assign(label string, alpha float64) Color {
	r, g, b := rgb(Hue(label))
	return Color{R: r, G: g, B: b, A: alpha}
}

// AssignPair returns fill and stroke colors for label with a shared hue.
func AssignPair(label string, fillAlpha, strokeAlpha float64) Pair {
	base := Assign(label, fillAlpha)
	stroke := base
	stroke.A = strokeAlpha
	return Pair{Fill: base, Stroke: stroke}
}

// rgb converts a hue in degrees at the fixed saturation and lightness to
// 8-bit channels.
func rgb(hue int) (uint8, uint8, uint8) {
	return colorful.Hsl(float64(hue), Saturation, Lightness).RGB255()
}
