// Package config defines the numeric contract of the ranking core
// (spec.md §6: convergence thresholds, the prior, the per-game
// performance variance, the EIG softmax temperature, and the
// iteration cap) and an optional YAML loader that overlays a subset of
// those values onto the spec-mandated defaults.
//
// Changing any of these values changes the output of the solver and the
// EIG selector; they are part of the public contract, not internal
// tuning knobs, which is why they are collected in one struct instead
// of being scattered package-local constants.
package config
