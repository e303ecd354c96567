// Package plot renders sampled curves through a small matplotlib-like [Sink]:
// Plot draws a polyline, Scatter draws markers, Quiver draws arrows, and Save
// writes the result.
//
// Two sinks are provided. [Image] builds a gonum/plot figure and saves it in
// any format gonum/plot encodes (png, svg, pdf, ...). [Canvas] draws braille
// characters for the terminal. [Open] picks one from a file extension. Both
// autoscale to the union of everything drawn with equal x and y spans, so
// circles stay round.
package plot
