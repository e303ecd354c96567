package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

type WindingResult struct {
	// Bin is the strongest non-DC frequency bin, in cycles per window.
	Bin   int
	Power []float64
}

// Winding finds the dominant oscillation of a sampled coordinate. The window
// is used as is; go-dsp handles lengths that are not powers of two. Windows
// shorter than four samples have no non-DC bin and give an empty result.
func Winding(xs []float64) WindingResult {
	if len(xs) < 4 {
		return WindingResult{}
	}

	spectrum := fft.FFTReal(xs)
	power := make([]float64, len(spectrum)/2)
	for i := range power {
		power[i] = cmplx.Abs(spectrum[i])
	}

	best := 0
	for i := 1; i < len(power); i++ {
		if best == 0 || power[i] > power[best] {
			best = i
		}
	}

	return WindingResult{Bin: best, Power: power}
}
