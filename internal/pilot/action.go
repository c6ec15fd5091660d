package pilot

// Action is the pilot's high-level intent for one tick. Exactly one action
// is active per tick; any action-specific memory lives in its handler,
// never on the tag itself.
type Action int

const (
	ActionWait            Action = iota // hold position, neutral controls
	ActionChaseBall                     // chase the ball and hit it forward with power
	ActionDisableOpponent               // run down an enemy car and demolish it
	ActionShoot                         // shoot the ball on target, usually with a flip
	ActionPass                          // pass the ball to a teammate
	ActionDefend                        // clear the ball away from our half
	ActionHoldDefense                   // position behind a teammate, covering the likely ball path
	ActionHoldOffense                   // position beside or ahead of a teammate
	ActionSeekBoost                     // drive to the nearest active boost pad
)

func (a Action) String() string {
	switch a {
	case ActionWait:
		return "WAIT"
	case ActionChaseBall:
		return "CHASE_BALL"
	case ActionDisableOpponent:
		return "DISABLE_OPPONENT"
	case ActionShoot:
		return "SHOOT"
	case ActionPass:
		return "PASS"
	case ActionDefend:
		return "DEFEND"
	case ActionHoldDefense:
		return "HOLD_DEFENSIVE_POSITION"
	case ActionHoldOffense:
		return "HOLD_OFFENSIVE_POSITION"
	case ActionSeekBoost:
		return "SEEK_RESOURCE"
	default:
		return "unknown"
	}
}

// Actions lists every variant, in order. Dispatch totality tests walk this.
func Actions() []Action {
	return []Action{
		ActionWait,
		ActionChaseBall,
		ActionDisableOpponent,
		ActionShoot,
		ActionPass,
		ActionDefend,
		ActionHoldDefense,
		ActionHoldOffense,
		ActionSeekBoost,
	}
}
