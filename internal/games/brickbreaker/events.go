package brickbreaker

import "slices"

// EventKind identifies a cue for the presentation layer.
type EventKind int

const (
	EventBallLaunch EventKind = iota
	EventWallBounce
	EventPaddleBounce
	EventBrickHit
	EventBrickDestroyed
	EventPowerupCaught
	EventComboMilestone
	EventLifeLost
	EventLevelClear
	EventGameOver
	EventRestart
)

var eventNames = [...]string{
	EventBallLaunch:     "ball_launch",
	EventWallBounce:     "wall_bounce",
	EventPaddleBounce:   "paddle_bounce",
	EventBrickHit:       "brick_hit",
	EventBrickDestroyed: "brick_destroyed",
	EventPowerupCaught:  "powerup_caught",
	EventComboMilestone: "combo_milestone",
	EventLifeLost:       "life_lost",
	EventLevelClear:     "level_clear",
	EventGameOver:       "game_over",
	EventRestart:        "restart",
}

// String returns the event name.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is something that happened during a tick. Only the fields relevant
// to the kind are set.
type Event struct {
	Kind    EventKind
	Combo   int         // BrickDestroyed, ComboMilestone
	Bonus   int         // ComboMilestone, LevelClear
	Level   int         // LevelClear
	Powerup PowerupKind // PowerupCaught
	Won     bool        // GameOver
	X, Y    float64     // where it happened, when meaningful
}

// HasEvent reports whether events holds at least one event of kind.
func HasEvent(events []Event, kind EventKind) bool {
	return slices.ContainsFunc(events, func(e Event) bool { return e.Kind == kind })
}
