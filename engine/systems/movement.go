package systems

import (
	"math"

	"github.com/1siamBot/feg-tactics/engine/core"
)

// MovementSystem glides units along the path of their last move
type MovementSystem struct{}

func (s *MovementSystem) Priority() int { return 10 }

func (s *MovementSystem) Update(r *core.Roster, dt float64) {
	for _, u := range r.Units() {
		Glide(&u.Motion, dt)
	}
}

// Glide moves m toward its next waypoints, covering Speed*dt cells
func Glide(m *core.Motion, dt float64) {
	budget := m.Speed * dt
	for budget > 0 && m.Moving() {
		target := m.Path[m.PathIdx]
		tx, ty := float64(target.X), float64(target.Y)
		dx, dy := tx-m.X, ty-m.Y
		dist := math.Hypot(dx, dy)
		if dist <= budget {
			m.X, m.Y = tx, ty
			m.PathIdx++
			budget -= dist
			continue
		}
		m.X += dx / dist * budget
		m.Y += dy / dist * budget
		budget = 0
	}
	if !m.Moving() {
		m.Path = nil
		m.PathIdx = 0
	}
}
