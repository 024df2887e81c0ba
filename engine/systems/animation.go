package systems

import (
	"github.com/1siamBot/feg-tactics/engine/core"
)

// AnimationSystem advances the idle animation of every unit
type AnimationSystem struct{}

func (s *AnimationSystem) Priority() int { return 60 }

func (s *AnimationSystem) Update(r *core.Roster, dt float64) {
	for _, u := range r.Units() {
		Animate(&u.Anim, dt)
	}
}

// Animate steps one animation by dt seconds
func Animate(anim *core.AnimState, dt float64) {
	if anim.Finished || anim.Speed <= 0 || anim.Frames <= 0 {
		return
	}

	anim.Timer += dt
	frameDur := 1.0 / anim.Speed
	for anim.Timer >= frameDur {
		anim.Timer -= frameDur
		anim.Frame++
		if anim.Frame >= anim.Frames {
			if anim.Loop {
				anim.Frame = 0
			} else {
				anim.Finished = true
				anim.Frame = anim.Frames - 1
				return
			}
		}
	}
}
