package pilot

// Pad is one boost pad's static location plus its live availability.
type Pad struct {
	Pos    Vec3
	IsBig  bool
	Active bool
}

// PadTracker mirrors the host's boost pad state. The static layout arrives
// once at match start; availability is refreshed every tick before the
// pilot decides. Only out-of-scope handlers (SEEK_RESOURCE) and the debug
// view read it.
type PadTracker struct {
	pads []Pad
}

// Initialize installs the static pad layout. Called once, when the match
// goes live and field info is available.
func (t *PadTracker) Initialize(pads []Pad) {
	t.pads = make([]Pad, len(pads))
	copy(t.pads, pads)
}

// Refresh updates per-pad availability. active must be indexed like the
// layout given to Initialize; a mismatched length is ignored rather than
// allowed to corrupt the tracker mid-match.
func (t *PadTracker) Refresh(active []bool) {
	if len(active) != len(t.pads) {
		return
	}
	for i := range t.pads {
		t.pads[i].Active = active[i]
	}
}

// Pads returns the tracked pads. Callers must not mutate the result.
func (t *PadTracker) Pads() []Pad {
	return t.pads
}

// ClosestActive returns the nearest currently-available pad and true, or
// false when no pad is up.
func (t *PadTracker) ClosestActive(from Vec3) (Pad, bool) {
	best := -1
	bestDist := 0.0
	for i, p := range t.pads {
		if !p.Active {
			continue
		}
		d := from.Dist(p.Pos)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best == -1 {
		return Pad{}, false
	}
	return t.pads[best], true
}
