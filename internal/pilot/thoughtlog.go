package pilot

import "fmt"

// Thought is a single line in the pilot's decision log.
type Thought struct {
	Tick    int
	Action  Action
	Message string
}

func (t Thought) String() string {
	return fmt.Sprintf("%5d [%s] %s", t.Tick, t.Action, t.Message)
}

// ThoughtLog is a fixed-capacity ring buffer of recent decisions, rendered
// by the viewer's HUD and embedded in debug reports. Write-only from the
// tick path; never read back for control.
type ThoughtLog struct {
	entries []Thought
	head    int
	count   int
}

// NewThoughtLog creates a log holding the most recent cap entries.
func NewThoughtLog(cap int) *ThoughtLog {
	if cap <= 0 {
		cap = 60
	}
	return &ThoughtLog{entries: make([]Thought, cap)}
}

// Add appends an entry, evicting the oldest once full.
func (tl *ThoughtLog) Add(tick int, action Action, msg string) {
	tl.entries[tl.head] = Thought{Tick: tick, Action: action, Message: msg}
	tl.head = (tl.head + 1) % len(tl.entries)
	if tl.count < len(tl.entries) {
		tl.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (tl *ThoughtLog) Recent() []Thought {
	n := len(tl.entries)
	result := make([]Thought, tl.count)
	for i := 0; i < tl.count; i++ {
		result[i] = tl.entries[(tl.head-tl.count+i+n)%n]
	}
	return result
}
