package eig

// Probe is a candidate for the next comparison, together with the
// information it would be expected to reveal.
type Probe struct {
	I, J int
	Gain float64
}

// Result is the outcome of scoring every unordered pair against a
// baseline posterior: the win-probability matrix, the lower-triangular
// EIG matrix, and the recommended next pair.
type Result struct {
	WinProbability [][]float64
	Gain           [][]float64
	Best           [2]int
	candidates     []Probe
}

// Weights exposes the softmax-style weighting spec.md §4.5 preserves for
// inspection (exp(β·gain) over every positive-gain candidate). It is never
// used to pick Best — that remains a deterministic argmax — but callers
// that want to eyeball the score distribution, or switch to weighted
// sampling, can read it here. Callers typically pass the configured
// config.Thresholds.EIGTemperature as beta.
func (r *Result) Weights(beta float64) []Probe {
	out := make([]Probe, len(r.candidates))
	copy(out, r.candidates)
	for i := range out {
		out[i].Gain = weight(out[i].Gain, beta)
	}
	return out
}
