package geometry

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Darken scales each RGB channel of hex by factor, flooring the result.
// Unparseable input yields [DarkenFallback].
func Darken(hex string, factor float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return DarkenFallback
	}
	r, g, b := c.RGB255()
	return colorful.Color{
		R: scale(r, factor),
		G: scale(g, factor),
		B: scale(b, factor),
	}.Hex()
}

func scale(ch uint8, factor float64) float64 {
	return math.Max(0, math.Min(255, math.Floor(float64(ch)*factor))) / 255
}
