package physics

import (
	"math"
	"testing"

	"github.com/san-kum/arcade2d/internal/vec"
)

var unitScale = vec.Vec2{X: 1, Y: 1}

func circleAt(t *testing.T, x, y, r float64) (*Collider, *Body) {
	t.Helper()
	b := NewBody()
	b.Pos = vec.Vec2{X: x, Y: y}
	s := NewCircle(0, 0, r)
	s.body = b
	b.shapes = append(b.shapes, s)
	s.refresh(b.Pos, unitScale)
	return s, b
}

func boxAt(t *testing.T, x, y, w, h float64) (*Collider, *Body) {
	t.Helper()
	b := NewBody()
	b.Pos = vec.Vec2{X: x, Y: y}
	s := NewBox(0, 0, w, h)
	s.body = b
	b.shapes = append(b.shapes, s)
	s.refresh(b.Pos, unitScale)
	return s, b
}

func TestCircleToCircleOverlap(t *testing.T) {
	sa, ba := circleAt(t, 0, 0, 10)
	sb, bb := circleAt(t, 15, 0, 10)

	p := &CircleToCircle{}
	p.Set(sa, sb, ba, bb)

	if !p.Test() {
		t.Fatal("expected collision for overlapping circles")
	}
	if math.Abs(p.Overlap()-5) > 1e-9 {
		t.Errorf("expected overlap 5, got %f", p.Overlap())
	}
	if n := p.Normal(); math.Abs(n.X-1) > 1e-9 || math.Abs(n.Y) > 1e-9 {
		t.Errorf("expected normal (1,0), got (%f,%f)", n.X, n.Y)
	}
}

func TestCircleToCircleExactTouchIsNotCollision(t *testing.T) {
	sa, ba := circleAt(t, 0, 0, 10)
	sb, bb := circleAt(t, 20, 0, 10)

	p := &CircleToCircle{}
	p.Set(sa, sb, ba, bb)

	if p.Test() {
		t.Error("exactly-touching circles should not collide")
	}
	if p.InCollision() {
		t.Error("pair should not be marked in collision")
	}
}

func TestCircleToCircleCoincidentCenters(t *testing.T) {
	sa, ba := circleAt(t, 5, 5, 10)
	sb, bb := circleAt(t, 5, 5, 8)

	p := &CircleToCircle{}
	p.Set(sa, sb, ba, bb)

	if !p.Test() {
		t.Fatal("coincident circles should collide")
	}
	if n := p.Normal(); n.X != 1 || n.Y != 0 {
		t.Errorf("expected stable unit-x normal, got (%f,%f)", n.X, n.Y)
	}
	if p.Overlap() != 18 {
		t.Errorf("expected overlap 18 (radius sum), got %f", p.Overlap())
	}
}

func TestBoxToBoxLeastOverlapAxis(t *testing.T) {
	cases := []struct {
		name      string
		bx, by    float64
		wantN     vec.Vec2
		wantDepth float64
	}{
		{name: "from the right", bx: 15, by: 5, wantN: vec.Vec2{X: 1}, wantDepth: 5},
		{name: "from the left", bx: -15, by: 5, wantN: vec.Vec2{X: -1}, wantDepth: 5},
		{name: "from below", bx: 5, by: 15, wantN: vec.Vec2{Y: 1}, wantDepth: 5},
		{name: "from above", bx: 5, by: -15, wantN: vec.Vec2{Y: -1}, wantDepth: 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sa, ba := boxAt(t, 0, 0, 20, 20)
			sb, bb := boxAt(t, tc.bx, tc.by, 20, 20)

			p := &BoxToBox{}
			p.Set(sa, sb, ba, bb)

			if !p.Test() {
				t.Fatal("expected collision")
			}
			if p.Normal() != tc.wantN {
				t.Errorf("expected normal %v, got %v", tc.wantN, p.Normal())
			}
			if math.Abs(p.Overlap()-tc.wantDepth) > 1e-9 {
				t.Errorf("expected overlap %f, got %f", tc.wantDepth, p.Overlap())
			}
		})
	}
}

func TestBoxToBoxSeparated(t *testing.T) {
	sa, ba := boxAt(t, 0, 0, 20, 20)
	sb, bb := boxAt(t, 20, 0, 20, 20) // flush edges

	p := &BoxToBox{}
	p.Set(sa, sb, ba, bb)

	if p.Test() {
		t.Error("flush boxes should not collide")
	}
}

func TestBoxToCircle(t *testing.T) {
	t.Run("outside overlap", func(t *testing.T) {
		sa, ba := boxAt(t, 0, 0, 20, 20)
		sb, bb := circleAt(t, 23, 10, 5)

		p := &BoxToCircle{}
		p.Set(sa, sb, ba, bb)

		if !p.Test() {
			t.Fatal("expected collision")
		}
		if n := p.Normal(); n.X != 1 || n.Y != 0 {
			t.Errorf("expected normal (1,0), got %v", n)
		}
		if math.Abs(p.Overlap()-2) > 1e-9 {
			t.Errorf("expected overlap 2, got %f", p.Overlap())
		}
	})

	t.Run("exact touch misses", func(t *testing.T) {
		sa, ba := boxAt(t, 0, 0, 20, 20)
		sb, bb := circleAt(t, 25, 10, 5)

		p := &BoxToCircle{}
		p.Set(sa, sb, ba, bb)

		if p.Test() {
			t.Error("circle touching the box edge should not collide")
		}
	})

	t.Run("center inside box", func(t *testing.T) {
		sa, ba := boxAt(t, 0, 0, 20, 20)
		sb, bb := circleAt(t, 18, 10, 5)

		p := &BoxToCircle{}
		p.Set(sa, sb, ba, bb)

		if !p.Test() {
			t.Fatal("expected collision")
		}
		if n := p.Normal(); n.X != 1 || n.Y != 0 {
			t.Errorf("expected push through right face, got %v", n)
		}
		if math.Abs(p.Overlap()-7) > 1e-9 {
			t.Errorf("expected overlap 7 (2 to the face + radius), got %f", p.Overlap())
		}
	})
}

func TestImpulsesClearedOnSeparation(t *testing.T) {
	sa, ba := circleAt(t, 0, 0, 10)
	sb, bb := circleAt(t, 15, 0, 10)
	ba.Velocity = vec.Vec2{X: 2}
	bb.Velocity = vec.Vec2{X: -2}

	p := &CircleToCircle{}
	p.Set(sa, sb, ba, bb)

	if !p.Test() {
		t.Fatal("expected collision")
	}
	p.PreSolve()
	p.SolveVelocity()
	if p.normalImpulse <= 0 {
		t.Fatalf("expected positive accumulated impulse, got %f", p.normalImpulse)
	}

	// separate and re-test: accumulated impulses must read back as zero
	bb.Pos = vec.Vec2{X: 100}
	sb.refresh(bb.Pos, unitScale)
	if p.Test() {
		t.Fatal("expected separation")
	}
	if p.normalImpulse != 0 || p.tangentImpulse != 0 {
		t.Errorf("impulses should reset on separation, got n=%f t=%f",
			p.normalImpulse, p.tangentImpulse)
	}
}

func TestSolveVelocitySeparatesApproachingBodies(t *testing.T) {
	sa, ba := circleAt(t, 0, 0, 10)
	sb, bb := circleAt(t, 15, 0, 10)
	ba.Velocity = vec.Vec2{X: 3}
	bb.Velocity = vec.Vec2{X: -3}

	p := &CircleToCircle{}
	p.Set(sa, sb, ba, bb)
	if !p.Test() {
		t.Fatal("expected collision")
	}
	p.PreSolve()
	p.SolveVelocity()

	if ba.Velocity.X > 0 {
		t.Errorf("body A should not keep approaching, vx=%f", ba.Velocity.X)
	}
	if bb.Velocity.X < 0 {
		t.Errorf("body B should not keep approaching, vx=%f", bb.Velocity.X)
	}

	// relative normal velocity is no longer approaching
	rv := bb.Velocity.Sub(ba.Velocity).Dot(p.Normal())
	if rv < -1e-9 {
		t.Errorf("bodies still approaching after solve, rv=%f", rv)
	}
}

func TestSolveVelocitySkipsTwoStaticBodies(t *testing.T) {
	sa, ba := circleAt(t, 0, 0, 10)
	sb, bb := circleAt(t, 5, 0, 10)
	ba.SetStatic(true)
	bb.SetStatic(true)

	p := &CircleToCircle{}
	p.Set(sa, sb, ba, bb)
	if !p.Test() {
		t.Fatal("expected geometric overlap")
	}
	p.PreSolve()
	p.SolveVelocity()
	p.SolvePosition()

	if !ba.Velocity.IsZero() || !bb.Velocity.IsZero() {
		t.Error("static bodies must not gain velocity")
	}
	if ba.Pos.X != 0 || bb.Pos.X != 5 {
		t.Error("static bodies must not move")
	}
}
