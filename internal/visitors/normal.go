package visitors

import "math/rand"

// Normal samples daily counts from a normal distribution and floors the
// result, matching the reference dataset (mean 11000, std dev 1000, floor 0).
// The seed fixes the whole series: same seed, same horizon, same counts.
type Normal struct {
	Mean   float64
	StdDev float64
	Floor  float64
	Seed   int64
}

func NewNormal(mean, stdDev, floor float64, seed int64) Normal {
	return Normal{Mean: mean, StdDev: stdDev, Floor: floor, Seed: seed}
}

func (n Normal) Name() string { return "normal" }

func (n Normal) Series(horizon int) Series {
	rng := rand.New(rand.NewSource(n.Seed))
	out := make(Series, 0, horizon)
	for i := 0; i < horizon; i++ {
		v := n.Mean + rng.NormFloat64()*n.StdDev
		if v < n.Floor {
			v = n.Floor
		}
		out = append(out, v)
	}
	return out
}
