package ecs

import (
	"github.com/yohamta/donburi/features/events"
)

// FeedbackKind identifies a gameplay moment that presentation code reacts to.
type FeedbackKind uint8

const (
	FeedbackCoin      FeedbackKind = iota // coin collected
	FeedbackShieldOn                      // shield power-up collected
	FeedbackShieldOff                     // shield expired
	FeedbackAbsorbed                      // obstacle hit while shielded
	FeedbackGameOver                      // unshielded obstacle hit
)

// Feedback is published by the collision handlers. X and Y are the player's
// position at the time of the event.
type Feedback struct {
	Kind FeedbackKind
	X, Y float64
	// Value carries the coin amount for FeedbackCoin and the final score for
	// FeedbackGameOver.
	Value int
}

// FeedbackEvent is the Donburi event type for gameplay feedback. Subscribe to
// it to drive camera, particle, and audio effects; events are delivered when
// the session processes its world events at the end of each tick.
var FeedbackEvent = events.NewEventType[Feedback]()
