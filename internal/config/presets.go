package config

import (
	"math"
	"sort"
)

var Presets = map[string]map[string]*Config{
	"components": {
		"north": {
			Calculation: "components",
			Inputs:      map[string]float64{"magnitude": 1, "direction": 90},
		},
		"diagonal": {
			Calculation: "components",
			Inputs:      map[string]float64{"magnitude": math.Sqrt2, "direction": 45},
		},
		"southwest": {
			Calculation: "components",
			Inputs:      map[string]float64{"magnitude": 10, "direction": 225},
		},
	},
	"polar": {
		"diagonal": {
			Calculation: "polar",
			Inputs:      map[string]float64{"x": 1, "y": 1},
		},
		"west": {
			Calculation: "polar",
			Inputs:      map[string]float64{"x": -1, "y": 0},
		},
		"origin": {
			Calculation: "polar",
			Inputs:      map[string]float64{"x": 0, "y": 0},
		},
	},
	"spherical": {
		"z_axis": {
			Calculation: "spherical",
			Inputs:      map[string]float64{"x": 0, "y": 0, "z": 1},
		},
		"octant": {
			Calculation: "spherical",
			Inputs:      map[string]float64{"x": 1, "y": 1, "z": 1},
		},
	},
	"cartesian": {
		"equator": {
			Calculation: "cartesian",
			Inputs:      map[string]float64{"radius": 1, "polar": math.Pi / 2, "azimuthal": 0},
		},
		"pole": {
			Calculation: "cartesian",
			Inputs:      map[string]float64{"radius": 1, "polar": 0, "azimuthal": 0},
		},
	},
	"spring": {
		"standard": {
			Calculation: "spring",
			Inputs:      map[string]float64{"k": 4, "x0": 2},
		},
		"inverted": {
			Calculation: "spring",
			Inputs:      map[string]float64{"k": 4, "x0": -2},
		},
		"slow": {
			Calculation: "spring",
			Inputs:      map[string]float64{"k": 0.25, "x0": 1},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(calculation, preset string) *Config {
	calcPresets, ok := Presets[calculation]
	if !ok {
		return nil
	}
	cfg, ok := calcPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(calculation string) []string {
	calcPresets, ok := Presets[calculation]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(calcPresets))
	for name := range calcPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
