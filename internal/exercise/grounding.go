package exercise

// GroundingSteps is the built-in 5-4-3-2-1 senses sequence.
var GroundingSteps = []string{
	"See 5 things",
	"Touch 4 things",
	"Hear 3 things",
	"Smell 2 things",
	"Taste 1 thing",
}

// Stepper is the grounding variant of an exercise: phases advance only on an
// explicit user confirmation, never on a timer.
type Stepper struct {
	steps      []string
	idx        int
	done       bool
	onComplete func()
}

// NewStepper builds a stepper. An empty step list panics. onComplete fires
// when the user confirms the final step; it may be nil.
func NewStepper(steps []string, onComplete func()) *Stepper {
	if len(steps) == 0 {
		panic("exercise: empty step list")
	}
	return &Stepper{
		steps:      append([]string(nil), steps...),
		onComplete: onComplete,
	}
}

// Advance confirms the current step. On the final step it fires the
// completion action instead of moving past the list bound. Reports whether
// the stepper is now finished.
func (s *Stepper) Advance() bool {
	if s.done {
		return true
	}
	if s.idx < len(s.steps)-1 {
		s.idx++
		return false
	}
	s.done = true
	if s.onComplete != nil {
		s.onComplete()
	}
	return true
}

func (s *Stepper) Step() string { return s.steps[s.idx] }
func (s *Stepper) Index() int   { return s.idx }
func (s *Stepper) Total() int   { return len(s.steps) }
func (s *Stepper) Done() bool   { return s.done }
