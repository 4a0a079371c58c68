package evolution

// PhaseInterval is a contiguous run of snapshots sharing one phase. StartAge
// and EndAge are the ages of the run's first and last snapshots; the
// transition to the next phase happens between EndAge and the next interval's
// StartAge.
type PhaseInterval struct {
	Phase    Phase
	StartAge float64 // years
	EndAge   float64 // years
	Samples  int
}

// Span returns the age extent of the interval in years.
func (pi PhaseInterval) Span() float64 {
	return pi.EndAge - pi.StartAge
}

// PhaseIntervals groups the track's snapshots into per-phase age spans, in
// track order. Each phase of the regime appears exactly once, since tracks
// never revisit a phase.
func PhaseIntervals(t *Track) []PhaseInterval {
	var intervals []PhaseInterval
	for _, s := range t.Snapshots {
		if n := len(intervals); n > 0 && intervals[n-1].Phase == s.Phase {
			intervals[n-1].EndAge = s.Age
			intervals[n-1].Samples++
			continue
		}
		intervals = append(intervals, PhaseInterval{
			Phase:    s.Phase,
			StartAge: s.Age,
			EndAge:   s.Age,
			Samples:  1,
		})
	}
	return intervals
}
