// Package rankit is a Bayesian pairwise-preference ranking core: a
// TrueSkill-style Gaussian belief-propagation solver over "winner beat
// loser" observations, plus an expected-information-gain selector that
// recommends which pair to compare next.
//
// Under the hood, the module is organized into focused subpackages:
//
//	gaussian/    — standard-normal CDF and truncated-Gaussian moment corrections
//	pendingset/  — the LIFO dedup work queue driving the fixed-point loop
//	factorgraph/ — the belief-propagation solver itself (Push/Pop/Solve/SolveOne)
//	eig/         — win-probability and expected-information-gain scoring
//	config/       — the numeric contract (thresholds) and its YAML overrides
//	rank/        — the facade tying the above together
//	cmd/rankctl/ — a small CLI front end
//
// The core is single-threaded and synchronous: no operation blocks on I/O,
// and nothing is shared across goroutines. Callers wanting parallelism
// construct one rank.Solver per problem instance.
//
//	go get github.com/katalvlaran/rankit
package rankit
