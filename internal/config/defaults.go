package config

import (
	_ "embed"
)

//go:embed defaults/creek.yaml
var defaultCreekYAML []byte

// DefaultCreekConfig returns the default Fuze Creek configuration.
func DefaultCreekConfig() CreekConfig {
	return CreekConfig{
		Creek: CreekShape{
			MaxWidth:     60,
			MinWidth:     10,
			RaftWidth:    2,
			UpstreamRows: 2,
			ClearRows:    3,
		},
		Hazards: CreekHazards{
			RockRate:       0.001,
			MineRate:       0.0001,
			MaxProbability: 0.5,
		},
		Player: CreekPlayer{
			StartingPatches: 20,
			AdvancePoints:   1,
		},
		Timing: CreekTiming{
			AdvanceMillis: 400,
		},
		View: CreekView{
			Profile:        string(ProfileConsole),
			DownstreamRows: 23,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCreekYAML
}
