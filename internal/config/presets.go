package config

import "sort"

// Presets are named settings bundles for solve/check runs.
var Presets = map[string]*Config{
	"strict": {
		Problem: "hs071",
		Engine:  EngineConfig{Accuracy: 1e-10, MaxIterations: 500},
		Check:   CheckConfig{Tolerance: 1e-7, Samples: 20, Seed: DefaultSeed},
	},
	"quick": {
		Problem: "hs071",
		Engine:  EngineConfig{Accuracy: 1e-6, MaxIterations: 50},
		Check:   CheckConfig{Tolerance: 1e-5, Samples: 2, Seed: DefaultSeed},
	},
}

// GetPreset returns the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
