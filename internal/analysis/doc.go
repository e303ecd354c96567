// Package analysis cross-checks dual-number derivatives and inspects sampled
// curves.
//
//   - [CheckDerivative]: compares the AD derivative with a central difference
//   - [Functions]: named unary functions used by the CLI
//   - [Winding]: dominant frequency of a sampled coordinate via FFT
//
// A spiral with k turns has its x coordinate dominated by bin k:
//
//	w := analysis.Winding(xs)
//	fmt.Println(w.Bin)
package analysis
