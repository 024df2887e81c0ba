package systems

import (
	"math"
	"testing"

	"github.com/1siamBot/feg-tactics/engine/core"
	"github.com/1siamBot/feg-tactics/engine/maplib"
)

func TestAnimate_Loops(t *testing.T) {
	anim := core.AnimState{Frames: 5, Speed: 2, Loop: true}
	Animate(&anim, 0.4)
	if anim.Frame != 0 {
		t.Fatalf("frame = %d before first step", anim.Frame)
	}
	Animate(&anim, 0.1)
	if anim.Frame != 1 {
		t.Fatalf("frame = %d, want 1", anim.Frame)
	}
	// Two full seconds wrap a 5-frame cycle at 2 fps back to frame 0.
	Animate(&anim, 2.0)
	if anim.Frame != 0 {
		t.Fatalf("frame = %d, want 0", anim.Frame)
	}
}

func TestAnimate_Finishes(t *testing.T) {
	anim := core.AnimState{Frames: 3, Speed: 10}
	Animate(&anim, 1)
	if !anim.Finished || anim.Frame != 2 {
		t.Fatalf("anim = %+v", anim)
	}
	Animate(&anim, 1)
	if anim.Frame != 2 {
		t.Fatal("finished animation advanced")
	}
}

func TestGlide_FollowsWaypoints(t *testing.T) {
	m := core.Motion{
		Path:    []maplib.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 2}},
		PathIdx: 1,
		Speed:   2,
	}
	Glide(&m, 0.25)
	if math.Abs(m.X-0.5) > 1e-9 || m.Y != 0 {
		t.Fatalf("pos = (%v, %v), want (0.5, 0)", m.X, m.Y)
	}
	Glide(&m, 0.5)
	if m.X != 1 || math.Abs(m.Y-0.5) > 1e-9 {
		t.Fatalf("pos = (%v, %v), want (1, 0.5)", m.X, m.Y)
	}
	Glide(&m, 10)
	if m.Moving() || m.X != 1 || m.Y != 2 {
		t.Fatalf("motion = %+v", m)
	}
}

func TestSystems_RunOnRoster(t *testing.T) {
	bus := core.NewEventBus()
	r := core.NewRoster(maplib.NewGrid(5, 1), bus)
	u, err := r.Spawn("u", 0, 4, maplib.Coord{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Move(u.ID, maplib.Coord{X: 3}); err != nil {
		t.Fatal(err)
	}

	gl := core.NewGameLoop(10, r, bus, 1)
	gl.AddSystem(&AnimationSystem{})
	gl.AddSystem(&MovementSystem{})
	for i := 0; i < 10; i++ {
		gl.Tick(0.1)
	}
	if u.Motion.Moving() || u.Motion.X != 3 {
		t.Fatalf("motion = %+v", u.Motion)
	}
	if u.Anim.Frame < 1 {
		t.Fatalf("anim frame = %d, animation did not run", u.Anim.Frame)
	}
}
