package config

import (
	"sort"

	"github.com/san-kum/fdlab/internal/fdiff"
)

// float32 machine epsilon
const singleEpsilon = 1.1920928955078125e-07

var Presets = map[string]*Config{
	"textbook": {
		Target: "sin", X0: 1.0, Epsilon: fdiff.DefaultEpsilon,
		MinExp: -16, MaxExp: -1, NumPoints: 50,
		Plot: PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
	},
	"coarse": {
		Target: "sin", X0: 1.0, Epsilon: fdiff.DefaultEpsilon,
		MinExp: -12, MaxExp: -1, NumPoints: 12,
		Plot: PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
	},
	"single": {
		Target: "sin", X0: 1.0, Epsilon: singleEpsilon,
		MinExp: -8, MaxExp: 0, NumPoints: 40,
		Plot: PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
	},
	"wide": {
		Target: "exp", X0: 1.0, Epsilon: fdiff.DefaultEpsilon,
		MinExp: -18, MaxExp: 0, NumPoints: 100,
		Plot: PlotConfig{Width: 90, Height: 16},
	},
	"cubic-origin": {
		Target: "cubic", X0: 0, Epsilon: fdiff.DefaultEpsilon,
		MinExp: -16, MaxExp: -1, NumPoints: 50,
		Plot: PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
