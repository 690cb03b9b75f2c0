package series

// Stats are the aggregates shown next to a graph.
type Stats struct {
	Min float64
	Max float64
	Avg float64
	// Peak is the largest window maximum seen since the last Reset,
	// tracked whether or not running mode is on.
	Peak float64
}

// Min returns the smallest value, or 0 for an empty window.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest value, or 0 for an empty window.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Avg returns the arithmetic mean over every slot, zero padding included.
// The result is clamped to [Min, Max] so rounding in the sum can't push it
// outside the window.
func Avg(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))
	if lo := Min(values); avg < lo {
		return lo
	}
	if hi := Max(values); avg > hi {
		return hi
	}
	return avg
}

// Compute returns the window statistics of b with Peak equal to Max.
func Compute(b *Buffer) Stats {
	values := b.Values()
	s := Stats{
		Min: Min(values),
		Max: Max(values),
		Avg: Avg(values),
	}
	s.Peak = s.Max
	return s
}

// Tracker computes Stats for one channel and remembers the all-time peak.
type Tracker struct {
	// Running makes Max report the all-time peak instead of the window max.
	Running bool

	peak float64
}

// Update recomputes the statistics for b. With Running set, the returned Max
// never decreases between calls even after the peak sample scrolls out.
func (t *Tracker) Update(b *Buffer) Stats {
	s := Compute(b)
	if s.Max > t.peak {
		t.peak = s.Max
	}
	s.Peak = t.peak
	if t.Running {
		s.Max = t.peak
	}
	return s
}

// Peak returns the largest maximum seen since the last Reset.
func (t *Tracker) Peak() float64 {
	return t.peak
}

// Reset forgets the running peak.
func (t *Tracker) Reset() {
	t.peak = 0
}

// Unify gives both channels the same Max so their graphs share one scale.
func Unify(rx, tx *Stats) {
	m := rx.Max
	if tx.Max > m {
		m = tx.Max
	}
	rx.Max = m
	tx.Max = m
}
