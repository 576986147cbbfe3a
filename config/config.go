// Package config loads gameplay tuning from an optional YAML file,
// falling back to the compiled-in defaults in the constants package.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Ramprajapat28/DhanMunch/constants"
)

// Tuning holds every adjustable gameplay number
// Durations are expressed in milliseconds or seconds to keep the YAML plain
type Tuning struct {
	SessionSeconds int `yaml:"session_seconds"`

	SpawnInitialMs int `yaml:"spawn_initial_ms"`
	SpawnStepMs    int `yaml:"spawn_step_ms"`
	SpawnMinMs     int `yaml:"spawn_min_ms"`
	FallSeconds    int `yaml:"fall_seconds"`

	MatchReward     int `yaml:"match_reward"`
	WrongBinPenalty int `yaml:"wrong_bin_penalty"`
	MissPenalty     int `yaml:"miss_penalty"`

	Muted bool `yaml:"muted"`
}

// Default returns a Tuning mirroring the constants package
func Default() *Tuning {
	return &Tuning{
		SessionSeconds:  int(constants.SessionDuration / time.Second),
		SpawnInitialMs:  int(constants.SpawnIntervalInitial / time.Millisecond),
		SpawnStepMs:     int(constants.SpawnIntervalStep / time.Millisecond),
		SpawnMinMs:      int(constants.SpawnIntervalMin / time.Millisecond),
		FallSeconds:     int(constants.FallDuration / time.Second),
		MatchReward:     constants.MatchReward,
		WrongBinPenalty: constants.WrongBinPenalty,
		MissPenalty:     constants.MissPenalty,
	}
}

// Load returns the defaults when path is empty, otherwise applies the
// YAML file at path on top of them and validates the result
func Load(path string) (*Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse tuning file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects values the session cannot run with
func (t *Tuning) Validate() error {
	if t.SessionSeconds <= 0 {
		return fmt.Errorf("session_seconds must be positive, got %d", t.SessionSeconds)
	}
	if t.SpawnInitialMs <= 0 {
		return fmt.Errorf("spawn_initial_ms must be positive, got %d", t.SpawnInitialMs)
	}
	if t.SpawnMinMs <= 0 {
		return fmt.Errorf("spawn_min_ms must be positive, got %d", t.SpawnMinMs)
	}
	if t.SpawnMinMs > t.SpawnInitialMs {
		return fmt.Errorf("spawn_min_ms %d exceeds spawn_initial_ms %d", t.SpawnMinMs, t.SpawnInitialMs)
	}
	if t.SpawnStepMs < 0 {
		return fmt.Errorf("spawn_step_ms must not be negative, got %d", t.SpawnStepMs)
	}
	if t.FallSeconds <= 0 {
		return fmt.Errorf("fall_seconds must be positive, got %d", t.FallSeconds)
	}
	if t.MatchReward < 0 || t.WrongBinPenalty < 0 || t.MissPenalty < 0 {
		return fmt.Errorf("score deltas must not be negative")
	}
	return nil
}

// SessionDuration returns the full countdown length
func (t *Tuning) SessionDuration() time.Duration {
	return time.Duration(t.SessionSeconds) * time.Second
}

// SpawnInitial returns the spawn interval at session start
func (t *Tuning) SpawnInitial() time.Duration {
	return time.Duration(t.SpawnInitialMs) * time.Millisecond
}

// SpawnStep returns the per-spawn interval decrease
func (t *Tuning) SpawnStep() time.Duration {
	return time.Duration(t.SpawnStepMs) * time.Millisecond
}

// SpawnMin returns the spawn interval floor
func (t *Tuning) SpawnMin() time.Duration {
	return time.Duration(t.SpawnMinMs) * time.Millisecond
}

// FallDuration returns how long a bubble takes to cross the field
func (t *Tuning) FallDuration() time.Duration {
	return time.Duration(t.FallSeconds) * time.Second
}
