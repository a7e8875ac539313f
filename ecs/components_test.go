package ecs

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestNewObstacleComponents(t *testing.T) {
	world := donburi.NewWorld()
	e := NewObstacle(world, VariantMoving,
		PositionData{X: 100, Y: -100},
		VelocityData{X: 40, Y: 200},
		SpinData{Rate: 90},
		BodyData{Radius: 8, Scale: 0.5},
		0x666666)

	entry := world.Entry(e)
	if got := Position.Get(entry); got.X != 100 || got.Y != -100 {
		t.Errorf("position = %+v, want (100,-100)", *got)
	}
	if got := Velocity.Get(entry); got.X != 40 || got.Y != 200 {
		t.Errorf("velocity = %+v, want (40,200)", *got)
	}
	if got := Spin.Get(entry).Rate; got != 0 {
		t.Errorf("spin rate = %v, want 0 for a moving obstacle", got)
	}
	if got := Body.Get(entry).EffectiveRadius(); got != 4 {
		t.Errorf("effective radius = %v, want 4", got)
	}
	if got := *Shape.Get(entry); got != VariantMoving {
		t.Errorf("variant = %v, want moving", got)
	}
}

func TestRotatingObstacleKeepsSpin(t *testing.T) {
	world := donburi.NewWorld()
	e := NewObstacle(world, VariantRotating, PositionData{}, VelocityData{}, SpinData{Rate: -150}, BodyData{Radius: 8, Scale: 1}, 0)
	if got := Spin.Get(world.Entry(e)).Rate; got != -150 {
		t.Errorf("spin rate = %v, want -150", got)
	}
}

func TestQueriesSeparateKinds(t *testing.T) {
	world := donburi.NewWorld()
	NewPlayer(world, PositionData{X: 180, Y: 600}, 25)
	NewObstacle(world, VariantStatic, PositionData{}, VelocityData{Y: 200}, SpinData{}, BodyData{Radius: 8, Scale: 1}, 0)
	NewCoin(world, PositionData{}, VelocityData{Y: 150}, BodyData{Radius: 8, Scale: 0.8}, 0xffd700)
	NewCoin(world, PositionData{}, VelocityData{Y: 150}, BodyData{Radius: 8, Scale: 0.8}, 0xffd700)
	NewPowerUp(world, PositionData{}, VelocityData{Y: 120}, BodyData{Radius: 8, Scale: 1.2}, 0x00ff00)

	tests := []struct {
		name  string
		query *donburi.Query
		want  int
	}{
		{"players", Players, 1},
		{"obstacles", Obstacles, 1},
		{"coins", Coins, 2},
		{"powerups", PowerUps, 1},
		{"falling", Falling, 4},
		{"movers", Movers, 4},
	}
	for _, tt := range tests {
		if got := tt.query.Count(world); got != tt.want {
			t.Errorf("%s count = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestFeedbackEventDelivery(t *testing.T) {
	world := donburi.NewWorld()

	var received []Feedback
	FeedbackEvent.Subscribe(world, func(w donburi.World, f Feedback) {
		received = append(received, f)
	})

	FeedbackEvent.Publish(world, Feedback{Kind: FeedbackCoin, X: 10, Y: 20, Value: 10})
	FeedbackEvent.Publish(world, Feedback{Kind: FeedbackGameOver, Value: 1234})

	if len(received) != 0 {
		t.Fatalf("events delivered before processing: %d", len(received))
	}
	FeedbackEvent.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Kind != FeedbackCoin || received[0].Value != 10 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Kind != FeedbackGameOver || received[1].Value != 1234 {
		t.Errorf("event 1: %+v", received[1])
	}
}
