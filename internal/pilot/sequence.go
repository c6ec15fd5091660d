package pilot

import "errors"

// ErrEmptySequence is returned when a maneuver is started with no steps.
var ErrEmptySequence = errors.New("sequence has no steps")

// ErrNegativeDuration is returned when a step carries a negative duration.
var ErrNegativeDuration = errors.New("sequence step has negative duration")

// ControlStep holds one frame of a committed maneuver and how long to
// emit it for. Immutable once created.
type ControlStep struct {
	Duration float64 // seconds, non-negative
	Frame    ControlFrame
}

// Sequence is a committed, time-ordered maneuver: an ordered list of steps
// plus a cursor. While a sequence is active it is the sole source of
// control output; it is owned exclusively by a Sequencer and mutated only
// from within Tick.
type Sequence struct {
	steps   []ControlStep
	index   int     // current step
	elapsed float64 // time spent inside the current step
	done    bool
}

// NewSequence builds a sequence from the given steps. The step list must be
// non-empty and every duration non-negative; a malformed maneuver is a
// programming error and is rejected here rather than allowed to corrupt
// the cursor later.
func NewSequence(steps []ControlStep) (*Sequence, error) {
	if len(steps) == 0 {
		return nil, ErrEmptySequence
	}
	for _, st := range steps {
		if st.Duration < 0 {
			return nil, ErrNegativeDuration
		}
	}
	return &Sequence{steps: steps}, nil
}

// Done reports whether the cursor has passed the last step.
func (s *Sequence) Done() bool {
	return s.done
}

// Tick advances the cursor by dt seconds and returns the frame of the step
// the cursor lands on. Advancement is inclusive: elapsed == duration moves
// to the next step, carrying the excess. Overflow past the last step marks
// the sequence done; the last step's frame is still returned on that call.
// A single large dt may skip several steps in one call.
func (s *Sequence) Tick(dt float64) ControlFrame {
	s.elapsed += dt
	for s.elapsed >= s.steps[s.index].Duration {
		if s.index == len(s.steps)-1 {
			s.done = true
			break
		}
		s.elapsed -= s.steps[s.index].Duration
		s.index++
	}
	return s.steps[s.index].Frame
}

// Sequencer owns the single active maneuver, if any. Starting a new
// sequence is the only cancellation primitive: it discards the previous one
// without running any cleanup step.
type Sequencer struct {
	active *Sequence
}

// Start replaces any active sequence unconditionally and resets the cursor
// to the first step. A malformed step list is rejected and leaves the
// previously active sequence (if any) untouched.
func (q *Sequencer) Start(steps []ControlStep) error {
	seq, err := NewSequence(steps)
	if err != nil {
		return err
	}
	q.active = seq
	return nil
}

// Active reports whether an unfinished sequence currently owns the output.
func (q *Sequencer) Active() bool {
	return q.active != nil && !q.active.done
}

// Tick advances the active sequence, if any. A false second return means
// "not active / finished: produce output elsewhere". Once a sequence has
// returned its final frame, the next call clears it and reports false.
func (q *Sequencer) Tick(dt float64) (ControlFrame, bool) {
	if q.active == nil {
		return ControlFrame{}, false
	}
	if q.active.done {
		q.active = nil
		return ControlFrame{}, false
	}
	return q.active.Tick(dt), true
}
