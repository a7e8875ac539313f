package flamerush

import (
	"github.com/phanxgames/flamerush/ecs"
	"github.com/yohamta/donburi"
)

// integrate advances every moving entity by dt seconds.
func integrate(w donburi.World, dt float64) {
	ecs.Movers.Each(w, func(entry *donburi.Entry) {
		pos := ecs.Position.Get(entry)
		vel := ecs.Velocity.Get(entry)
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	})
	ecs.Spinners.Each(w, func(entry *donburi.Entry) {
		spin := ecs.Spin.Get(entry)
		spin.Angle += spin.Rate * dt
	})
}

// cull destroys falling entities that left the playfield by more than margin
// below or to either side, and returns how many were removed. Entities above
// the playfield are kept; that is where they spawn.
func cull(w donburi.World, field Rect, margin float64, buf []donburi.Entity) ([]donburi.Entity, int) {
	buf = buf[:0]
	ecs.Falling.Each(w, func(entry *donburi.Entry) {
		pos := ecs.Position.Get(entry)
		if pos.Y > field.Y+field.Height+margin ||
			pos.X < field.X-margin ||
			pos.X > field.X+field.Width+margin {
			buf = append(buf, entry.Entity())
		}
	})
	for _, e := range buf {
		w.Remove(e)
	}
	return buf, len(buf)
}

// circlesOverlap reports whether two circles intersect. Touching circles do
// not overlap.
func circlesOverlap(ax, ay, ar, bx, by, br float64) bool {
	dx := bx - ax
	dy := by - ay
	rr := ar + br
	return dx*dx+dy*dy < rr*rr
}

// appendOverlaps appends every entity in q whose body overlaps the circle
// (x, y, r).
func appendOverlaps(w donburi.World, q *donburi.Query, x, y, r float64, buf []donburi.Entity) []donburi.Entity {
	q.Each(w, func(entry *donburi.Entry) {
		pos := ecs.Position.Get(entry)
		body := ecs.Body.Get(entry)
		if circlesOverlap(x, y, r, pos.X, pos.Y, body.EffectiveRadius()) {
			buf = append(buf, entry.Entity())
		}
	})
	return buf
}
