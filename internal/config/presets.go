package config

import (
	"math"
	"sort"
)

func preset(curve string, params map[string]float64, points, samples int, normalize bool) *Config {
	cfg := DefaultConfig()
	cfg.Curve = curve
	cfg.Params = params
	cfg.Sampling = SamplingConfig{Points: points, Samples: samples, Normalize: normalize}
	return cfg
}

var Presets = map[string]map[string]*Config{
	"spiral": {
		"classic": preset("spiral", map[string]float64{"turns": 1}, 1000, 20, false),
		"tight":   preset("spiral", map[string]float64{"turns": 4}, 4000, 80, true),
		"unit":    preset("spiral", map[string]float64{"turns": 1}, 1000, 20, true),
	},
	"circle": {
		"unit": preset("circle", map[string]float64{"radius": 1}, 360, 12, false),
	},
	"lissajous": {
		"figure8": preset("lissajous", map[string]float64{"a": 1, "b": 2, "delta": 0}, 1000, 24, true),
		"knot":    preset("lissajous", map[string]float64{"a": 3, "b": 2, "delta": math.Pi / 2}, 2000, 40, true),
	},
	"rose": {
		"three": preset("rose", map[string]float64{"k": 3}, 1200, 30, true),
		"four":  preset("rose", map[string]float64{"k": 2}, 1200, 32, true),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(curve, name string) *Config {
	curvePresets, ok := Presets[curve]
	if !ok {
		return nil
	}
	cfg, ok := curvePresets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(curve string) []string {
	curvePresets, ok := Presets[curve]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(curvePresets))
	for name := range curvePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
