package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds is the numeric contract named in spec.md §6. Every field here
// changes the output of a solve or an EIG sweep; pin these rather than
// scattering them as unnamed constants.
type Thresholds struct {
	// TauGlobal is the absolute-change convergence threshold used by Solve.
	TauGlobal float64 `yaml:"tau_global"`
	// TauProbe is the looser convergence threshold used by SolveOne.
	TauProbe float64 `yaml:"tau_probe"`
	// PriorPrecision (ρ₀) is added to every item's posterior precision
	// during a variable update, keeping the system well-posed when an
	// item has few incident factors.
	PriorPrecision float64 `yaml:"prior_precision"`
	// InitialVariance (σ²₀) is the variance of an item's belief before any
	// observation touches it.
	InitialVariance float64 `yaml:"initial_variance"`
	// PerformanceVariance is the fixed per-game performance variance (the
	// TrueSkill β² term) added when forming a factor's difference message.
	PerformanceVariance float64 `yaml:"performance_variance"`
	// EIGTemperature (β) scales the EIG softmax weights; Select remains a
	// deterministic argmax regardless of this value (spec.md §4.5).
	EIGTemperature float64 `yaml:"eig_temperature"`
	// MaxIterations caps the fixed-point loop's outer rounds.
	MaxIterations int `yaml:"max_iterations"`
}

// Default returns the spec-mandated constants of spec.md §6.
func Default() Thresholds {
	return Thresholds{
		TauGlobal:           1e-3,
		TauProbe:            1e-1,
		PriorPrecision:      0.02,
		InitialVariance:     0.5,
		PerformanceVariance: 1.0,
		EIGTemperature:      20,
		MaxIterations:       1000,
	}
}

// Load reads a YAML file at path and overlays any fields it sets onto
// Default(); fields absent from the file keep their spec-mandated default,
// while a field the file sets explicitly, even to zero, replaces it. A
// missing file is not an error — Load returns
// Default() unchanged, matching the teacher pack's "absent config file
// means use defaults" convention.
func Load(path string) (Thresholds, error) {
	out := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return Thresholds{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var override struct {
		TauGlobal           *float64 `yaml:"tau_global"`
		TauProbe            *float64 `yaml:"tau_probe"`
		PriorPrecision      *float64 `yaml:"prior_precision"`
		InitialVariance     *float64 `yaml:"initial_variance"`
		PerformanceVariance *float64 `yaml:"performance_variance"`
		EIGTemperature      *float64 `yaml:"eig_temperature"`
		MaxIterations       *int     `yaml:"max_iterations"`
	}
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Thresholds{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if override.TauGlobal != nil {
		out.TauGlobal = *override.TauGlobal
	}
	if override.TauProbe != nil {
		out.TauProbe = *override.TauProbe
	}
	if override.PriorPrecision != nil {
		out.PriorPrecision = *override.PriorPrecision
	}
	if override.InitialVariance != nil {
		out.InitialVariance = *override.InitialVariance
	}
	if override.PerformanceVariance != nil {
		out.PerformanceVariance = *override.PerformanceVariance
	}
	if override.EIGTemperature != nil {
		out.EIGTemperature = *override.EIGTemperature
	}
	if override.MaxIterations != nil {
		out.MaxIterations = *override.MaxIterations
	}

	return out, nil
}
