package ebiten

import (
	"image/color"
	"math"
)

// pulseBrightness returns a brightness in [low, high] following a sine wave of the given period
func pulseBrightness(nowMs int64, periodMs int64, low, high float64) float64 {
	phase := float64(nowMs%periodMs) / float64(periodMs)
	pulseValue := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0 // 0.0 to 1.0
	return low + (high-low)*pulseValue
}

// pulsingColor scales the RGB channels of c by a 2 second pulse between 60% and 100%
func pulsingColor(c color.Color, nowMs int64) color.RGBA {
	const pulsePeriod = 2000
	brightness := pulseBrightness(nowMs, pulsePeriod, 0.6, 1.0)

	r, g, b, a := c.RGBA()
	return color.RGBA{
		uint8(float64(r>>8) * brightness),
		uint8(float64(g>>8) * brightness),
		uint8(float64(b>>8) * brightness),
		uint8(a >> 8),
	}
}
