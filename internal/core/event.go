package core

// EventKind names a discrete simulation event. Events are produced during a
// step and surfaced through StepResult for fire-and-forget consumers (audio,
// logging). Nothing in the simulation waits on their delivery.
type EventKind int

const (
	EventJumped         EventKind = iota // Player left the ground
	EventLanded                          // Player landed on a platform
	EventCollected                       // Treasure collected; Value = points awarded
	EventPowerActivated                  // Power-up picked; Value = power type
	EventPlayerHit                       // Enemy contact without invincibility
	EventFellOff                         // Player fell below the world
	EventTimeUp                          // Level timer reached zero
	EventLifeLost                        // A life was lost (any cause)
	EventLevelClear                      // All treasures on the level collected
	EventGameOver                        // Lives exhausted; Value = final score
	EventGameWon                         // Final level cleared; Value = final score
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJumped:
		return "jump"
	case EventLanded:
		return "land"
	case EventCollected:
		return "collect"
	case EventPowerActivated:
		return "power"
	case EventPlayerHit:
		return "hit"
	case EventFellOff:
		return "fell"
	case EventTimeUp:
		return "timeup"
	case EventLifeLost:
		return "lifelost"
	case EventLevelClear:
		return "levelclear"
	case EventGameOver:
		return "gameover"
	case EventGameWon:
		return "won"
	default:
		return "unknown"
	}
}

// Event is a tagged simulation event with an optional integer payload.
type Event struct {
	Kind  EventKind
	Value int
}
