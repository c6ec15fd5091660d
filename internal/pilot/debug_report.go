package pilot

import (
	"fmt"
	"strings"
)

// DebugReport renders the pilot's recent behaviour as a plain-text block:
// current decision state, interception numbers for the given snapshot, pad
// availability, and the decision log. The viewer exports it to the
// clipboard; nothing in the control path reads it.
func (p *Pilot) DebugReport(snap Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- RocketSense pilot report ---\n")
	fmt.Fprintf(&b, "tick=%d elapsed=%.2fs action=%s sequencing=%v\n",
		p.tick, snap.Elapsed, p.lastAction, p.Sequencing())
	fmt.Fprintf(&b, "flips_started=%d prediction_fallbacks=%d\n\n", p.flipsStarted, p.fallbacks)

	dist := snap.Self.Pos.Dist(snap.Ball.Pos)
	fmt.Fprintf(&b, "self: pos=(%.0f, %.0f, %.0f) speed=%.1f boost=%.0f\n",
		snap.Self.Pos.X, snap.Self.Pos.Y, snap.Self.Pos.Z, snap.Self.Vel.Length(), snap.Self.Boost)
	fmt.Fprintf(&b, "ball: pos=(%.0f, %.0f, %.0f) dist=%.0f near=%v\n",
		snap.Ball.Pos.X, snap.Ball.Pos.Y, snap.Ball.Pos.Z, dist, dist <= p.selector.NearRange)
	fmt.Fprintf(&b, "aim:  (%.0f, %.0f, %.0f)\n\n",
		p.lastTarget.X, p.lastTarget.Y, p.lastTarget.Z)

	active := 0
	for _, pad := range p.pads.Pads() {
		if pad.Active {
			active++
		}
	}
	fmt.Fprintf(&b, "pads: %d/%d active\n\n", active, len(p.pads.Pads()))

	thoughts := p.thoughts.Recent()
	if len(thoughts) == 0 {
		b.WriteString("(no decisions recorded yet)\n")
	} else {
		b.WriteString("decisions:\n")
		for _, t := range thoughts {
			fmt.Fprintf(&b, "  %s\n", t)
		}
	}
	return b.String()
}
