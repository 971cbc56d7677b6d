package exercise

// RelaxationRegions is the built-in progressive muscle relaxation order.
var RelaxationRegions = []string{"Hands", "Shoulders", "Face", "Legs", "Feet"}

const (
	// Seconds spent tensing and releasing each body region.
	TenseSeconds   = 6
	ReleaseSeconds = 6
)

// Relaxation alternates a tense and a release phase per body region,
// advancing to the next region only after the full pair, and stops after the
// last region.
type Relaxation struct {
	*Engine
	regions []string
}

func NewRelaxation(regions []string, tenseSec, releaseSec int) *Relaxation {
	if len(regions) == 0 {
		panic("exercise: empty region list")
	}
	durations := make([]int, 0, len(regions)*2)
	labels := make([]string, 0, len(regions)*2)
	for _, region := range regions {
		durations = append(durations, tenseSec, releaseSec)
		labels = append(labels, "Tense: "+region, "Release: "+region)
	}
	return &Relaxation{
		Engine:  New(Finite, durations, labels),
		regions: append([]string(nil), regions...),
	}
}

// Region names the body part the session currently works on.
func (r *Relaxation) Region() string {
	return r.regions[r.PhaseIndex()/2]
}

// Tensing reports whether the current phase is the tense half of the pair.
func (r *Relaxation) Tensing() bool {
	return r.PhaseIndex()%2 == 0
}

func (r *Relaxation) RegionIndex() int { return r.PhaseIndex() / 2 }
func (r *Relaxation) Regions() int     { return len(r.regions) }
