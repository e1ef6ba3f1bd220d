package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// difficultyScaling describes how a preset departs from the loaded config.
type difficultyScaling struct {
	patches    int     // starting patches
	hazardMult float64 // multiplier on rock and mine rates
}

var difficultyScalings = map[DifficultyPreset]difficultyScaling{
	DifficultyEasy:   {patches: 30, hazardMult: 0.5},
	DifficultyNormal: {patches: 20, hazardMult: 1.0},
	DifficultyHard:   {patches: 10, hazardMult: 2.0},
}

// ParseDifficulty parses a preset name. An empty name means "keep the config".
func ParseDifficulty(name string) (DifficultyPreset, error) {
	preset := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if preset == "" {
		return "", nil
	}
	if _, ok := difficultyScalings[preset]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
	return preset, nil
}

// ApplyDifficulty modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyDifficulty(cfg *CreekConfig, preset DifficultyPreset) {
	s, ok := difficultyScalings[preset]
	if !ok {
		return
	}
	cfg.Player.StartingPatches = s.patches
	cfg.Hazards.RockRate = clampF(cfg.Hazards.RockRate*s.hazardMult, 0, 1)
	cfg.Hazards.MineRate = clampF(cfg.Hazards.MineRate*s.hazardMult, 0, 1)
}

// Profile selects the lookahead a front-end shows.
type Profile string

const (
	ProfileConsole Profile = "console"
	Profile2D      Profile = "2d"
	Profile3D      Profile = "3d"
)

var profileDownstreamRows = map[Profile]int{
	ProfileConsole: 23,
	Profile2D:      23,
	Profile3D:      125,
}

// ParseProfile parses a profile name. An empty name means "keep the config".
func ParseProfile(name string) (Profile, error) {
	p := Profile(strings.ToLower(strings.TrimSpace(name)))
	if p == "" {
		return "", nil
	}
	if _, ok := profileDownstreamRows[p]; !ok {
		return "", fmt.Errorf("unknown profile %q (want console, 2d or 3d)", name)
	}
	return p, nil
}

// ApplyProfile sets the lookahead for a front-end profile.
// An empty profile leaves the config unchanged.
func ApplyProfile(cfg *CreekConfig, p Profile) {
	rows, ok := profileDownstreamRows[p]
	if !ok {
		return
	}
	cfg.View.Profile = string(p)
	cfg.View.DownstreamRows = rows
}

// clampF restricts a float64 to [min, max].
func clampF(val, lo, hi float64) float64 {
	return max(lo, min(hi, val))
}
