package ai

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/sirupsen/logrus"

	"github.com/1siamBot/feg-tactics/engine/core"
	"github.com/1siamBot/feg-tactics/engine/logger"
	"github.com/1siamBot/feg-tactics/engine/maplib"
	"github.com/1siamBot/feg-tactics/engine/pathfind"
)

// Difficulty controls AI behavior
type Difficulty int

const (
	DiffEasy Difficulty = iota
	DiffMedium
	DiffHard
)

// DefaultRule scores a cell by the cost still separating it from the
// nearest enemy
const DefaultRule = "Left"

// ScoreEnv is what a scoring rule sees for one candidate cell.
// Lower scores win.
type ScoreEnv struct {
	Left  float64 // cost from the cell to the nearest enemy
	Spent float64 // cost of reaching the cell this turn
	Legs  int     // straight legs of the path there
	Sand  bool    // the cell is sand
}

// CompileRule compiles a scoring expression over ScoreEnv
func CompileRule(src string) (*vm.Program, error) {
	prog, err := expr.Compile(src, expr.Env(ScoreEnv{}), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("ai rule %q: %w", src, err)
	}
	return prog, nil
}

// AIController plays one team: each unit walks to the reachable cell its
// scoring rule likes best, by default as close as it can get to the
// nearest enemy.
type AIController struct {
	Team       int
	Difficulty Difficulty

	rule    *vm.Program
	ruleSrc string
	rng     *rand.Rand
	log     logrus.FieldLogger
}

func NewAIController(team int, diff Difficulty, seed int64) *AIController {
	ai := &AIController{
		Team:       team,
		Difficulty: diff,
		rng:        rand.New(rand.NewSource(seed)),
		log:        logger.Log,
	}
	if err := ai.SetRule(DefaultRule); err != nil {
		panic(err)
	}
	return ai
}

// SetRule replaces the scoring rule. The old rule stays on error.
func (ai *AIController) SetRule(src string) error {
	prog, err := CompileRule(src)
	if err != nil {
		return err
	}
	ai.rule, ai.ruleSrc = prog, src
	return nil
}

// Rule returns the scoring rule's source
func (ai *AIController) Rule() string { return ai.ruleSrc }

// score runs the rule; a failing rule falls back to Left
func (ai *AIController) score(env ScoreEnv) float64 {
	out, err := expr.Run(ai.rule, env)
	if err != nil {
		ai.log.WithError(err).WithField("rule", ai.ruleSrc).Warn("ai rule failed")
		return env.Left
	}
	f, ok := out.(float64)
	if !ok {
		return env.Left
	}
	return f
}

// Order is one planned move
type Order struct {
	Unit core.UnitID
	Dest maplib.Coord
	Left maplib.Cost // path cost still separating Dest from the target
}

type candidate struct {
	pos   maplib.Coord
	left  maplib.Cost
	score float64
}

// choices is how many of the best cells a difficulty picks from
func (d Difficulty) choices() int {
	switch d {
	case DiffEasy:
		return 4
	case DiffMedium:
		return 2
	default:
		return 1
	}
}

// Plan picks a destination for every unit of the team that has not moved.
// Units with no reachable enemy stay put.
func (ai *AIController) Plan(r *core.Roster) []Order {
	occupied := make(map[maplib.Coord]bool)
	var enemies []maplib.Coord
	for _, u := range r.Units() {
		occupied[u.Location()] = true
		if u.Team != ai.Team {
			enemies = append(enemies, u.Location())
		}
	}

	var orders []Order
	for _, u := range r.Team(ai.Team) {
		if u.Moved {
			continue
		}
		delete(occupied, u.Location())
		var cands []candidate
		for _, c := range u.Reachable() {
			if occupied[c] {
				continue
			}
			left, ok := nearest(r.Grid(), c, enemies)
			if !ok {
				continue
			}
			spent, _ := u.CostTo(c)
			env := ScoreEnv{
				Left:  left.Float64(),
				Spent: spent.Float64(),
				Legs:  len(pathfind.ConsolidatePath(u.PathTo(c))) - 1,
				Sand:  r.Grid().At(c) == maplib.TerrainSand,
			}
			cands = append(cands, candidate{c, left, ai.score(env)})
		}
		dest, left := u.Location(), maplib.Cost{}
		if len(cands) > 0 {
			sort.SliceStable(cands, func(i, j int) bool {
				if cands[i].score != cands[j].score {
					return cands[i].score < cands[j].score
				}
				if c := cands[i].left.Cmp(cands[j].left); c != 0 {
					return c < 0
				}
				return cands[i].pos.Less(cands[j].pos)
			})
			pick := cands[ai.rng.Intn(min(ai.Difficulty.choices(), len(cands)))]
			dest, left = pick.pos, pick.left
		}
		occupied[dest] = true
		orders = append(orders, Order{Unit: u.ID, Dest: dest, Left: left})
	}
	return orders
}

// nearest returns the cheapest path cost from c to any of targets
func nearest(g *maplib.Grid, c maplib.Coord, targets []maplib.Coord) (maplib.Cost, bool) {
	var best maplib.Cost
	found := false
	for _, t := range targets {
		_, cost, ok := pathfind.FindPath(g, c, t)
		if ok && (!found || cost.Less(best)) {
			best, found = cost, true
		}
	}
	return best, found
}

// TakeTurn plans and executes the team's moves and returns how many units
// changed cell
func (ai *AIController) TakeTurn(r *core.Roster) (int, error) {
	moved := 0
	for _, o := range ai.Plan(r) {
		u := r.Get(o.Unit)
		if o.Dest == u.Location() {
			u.Moved = true
			continue
		}
		if _, err := r.Move(o.Unit, o.Dest); err != nil {
			return moved, err
		}
		moved++
		ai.log.WithFields(logrus.Fields{"unit": u.Name, "to": o.Dest, "left": o.Left.String()}).Debug("ai move")
	}
	return moved, nil
}
