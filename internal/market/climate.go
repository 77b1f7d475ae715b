// Package market provides the seeded macro-climate curve that shapes the
// board's quarterly profit directives. The curve is layered opensimplex
// noise: smooth quarter-to-quarter drift, deterministic for a given seed.
package market

import opensimplex "github.com/ojrac/opensimplex-go"

// Climate is a smooth deterministic signal over quarters.
type Climate struct {
	noise opensimplex.Noise
}

// NewClimate builds the curve for a seed. Same seed, same curve.
func NewClimate(seed int64) Climate {
	return Climate{noise: opensimplex.NewNormalized(seed)}
}

// At returns the market climate for a quarter, in [0, 1). 0.5 is a neutral
// market; higher means the board smells growth and demands more.
func (c Climate) At(quarter int) float64 {
	return octaveNoise(c.noise, float64(quarter), 3, 0.35, 0.5)
}

// octaveNoise layers multiple noise frequencies for a more organic curve.
func octaveNoise(noise opensimplex.Noise, x float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, float64(i)*17.31) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
