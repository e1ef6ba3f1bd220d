// Package config provides YAML-based game configuration loading, difficulty
// presets, and front-end profiles for Fuze Creek.
package config

import (
	"errors"
	"fmt"
	"time"
)

// CreekConfig contains all configuration for a round of Fuze Creek.
type CreekConfig struct {
	Creek   CreekShape   `yaml:"creek"`
	Hazards CreekHazards `yaml:"hazards"`
	Player  CreekPlayer  `yaml:"player"`
	Timing  CreekTiming  `yaml:"timing"`
	View    CreekView    `yaml:"view"`
}

// CreekShape defines the geometry of the creek and the raft.
type CreekShape struct {
	MaxWidth     int `yaml:"max_width"`     // Interior width upper limit
	MinWidth     int `yaml:"min_width"`     // Interior width lower limit
	RaftWidth    int `yaml:"raft_width"`    // Cells covered by the raft
	UpstreamRows int `yaml:"upstream_rows"` // Rows kept behind the raft
	ClearRows    int `yaml:"clear_rows"`    // Hazard-free rows beyond the upstream rows
}

// CreekHazards defines how rock and mine density grows downstream.
type CreekHazards struct {
	RockRate       float64 `yaml:"rock_rate"`       // Rock probability per row index
	MineRate       float64 `yaml:"mine_rate"`       // Mine probability per row index
	MaxProbability float64 `yaml:"max_probability"` // Cap for either probability
}

// CreekPlayer defines the raft's starting inventory and scoring.
type CreekPlayer struct {
	StartingPatches int `yaml:"starting_patches"`
	AdvancePoints   int `yaml:"advance_points"`
}

// CreekTiming defines the pace of the round.
type CreekTiming struct {
	AdvanceMillis int `yaml:"advance_ms"` // Ideal time between advances
}

// CreekView defines what the front-end keeps visible.
type CreekView struct {
	Profile        string `yaml:"profile"`         // console, 2d or 3d
	DownstreamRows int    `yaml:"downstream_rows"` // Lookahead rows ahead of the raft
}

// AdvanceInterval returns the ideal time between advances.
func (c CreekConfig) AdvanceInterval() time.Duration {
	return time.Duration(c.Timing.AdvanceMillis) * time.Millisecond
}

// VisibleRows returns the number of live rows: lookahead, lookbehind and
// the raft's own row.
func (c CreekConfig) VisibleRows() int {
	return c.View.DownstreamRows + c.Creek.UpstreamRows + 1
}

// Validate reports every malformed value in the configuration.
// max_probability is capped at 0.5 so rock and mine together never exceed 1.
func (c CreekConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Creek.MinWidth >= 1, "creek.min_width %d must be at least 1", c.Creek.MinWidth)
	check(c.Creek.MaxWidth-c.Creek.MinWidth >= 2,
		"creek.max_width %d must exceed min_width %d by at least 2", c.Creek.MaxWidth, c.Creek.MinWidth)
	check(c.Creek.RaftWidth >= 1, "creek.raft_width %d must be at least 1", c.Creek.RaftWidth)
	check(c.Creek.RaftWidth <= c.Creek.MinWidth,
		"creek.raft_width %d must fit within min_width %d", c.Creek.RaftWidth, c.Creek.MinWidth)
	check(c.Creek.UpstreamRows >= 0, "creek.upstream_rows %d must not be negative", c.Creek.UpstreamRows)
	check(c.Creek.ClearRows >= 0, "creek.clear_rows %d must not be negative", c.Creek.ClearRows)

	check(isFraction(c.Hazards.RockRate), "hazards.rock_rate %v must be in [0, 1]", c.Hazards.RockRate)
	check(isFraction(c.Hazards.MineRate), "hazards.mine_rate %v must be in [0, 1]", c.Hazards.MineRate)
	check(isFraction(c.Hazards.MaxProbability) && c.Hazards.MaxProbability <= 0.5,
		"hazards.max_probability %v must be in [0, 0.5]", c.Hazards.MaxProbability)

	check(c.Player.StartingPatches >= 0, "player.starting_patches %d must not be negative", c.Player.StartingPatches)
	check(c.Timing.AdvanceMillis > 0, "timing.advance_ms %d must be positive", c.Timing.AdvanceMillis)
	check(c.View.DownstreamRows >= 1, "view.downstream_rows %d must be at least 1", c.View.DownstreamRows)

	return errors.Join(errs...)
}

func isFraction(v float64) bool {
	return v >= 0 && v <= 1
}
