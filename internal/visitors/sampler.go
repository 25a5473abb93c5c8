package visitors

// Sampler produces a visitor series for a horizon. The engine only requires
// the contract: fixed length, all values >= 0, and the same sampler state
// always reproducing the same series. Any distribution satisfying that can
// be substituted without changing engine behavior.
type Sampler interface {
	Name() string
	Series(horizon int) Series
}

// Constant emits the same count every day. Used by worked examples and
// cadence tests where the arithmetic should stay legible.
type Constant struct {
	Visitors float64
}

func NewConstant(visitors float64) Constant {
	return Constant{Visitors: visitors}
}

func (c Constant) Name() string { return "constant" }

func (c Constant) Series(horizon int) Series {
	out := make(Series, horizon)
	for i := range out {
		out[i] = c.Visitors
	}
	return out
}
