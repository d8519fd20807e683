package config

// Named viewports of the complex plane. The full set is the classic
// framing; the others zoom on landmarks along the boundary where escape
// trajectories are densest.
var Presets = map[string]*ViewportConfig{
	"full": {
		MinR: -2.0, MinI: -2.0,
		MaxR: 2.0, MaxI: 2.0,
	},
	"seahorse": {
		MinR: -0.10, MinI: -0.80,
		MaxR: 0.10, MaxI: -0.70,
	},
	"elephant": {
		MinR: -0.10, MinI: 0.25,
		MaxR: 0.10, MaxI: 0.40,
	},
	"needle": {
		MinR: -0.05, MinI: -2.0,
		MaxR: 0.05, MaxI: -1.6,
	},
	"bulb": {
		MinR: -0.40, MinI: -1.20,
		MaxR: 0.40, MaxI: -0.70,
	},
}

// GetPreset returns nil for unknown names.
func GetPreset(name string) *ViewportConfig {
	v, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *v
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
