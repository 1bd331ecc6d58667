package core

import "math/rand"

// Behavior is a pursuer movement policy.
type Behavior uint8

const (
	BehaviorPursuit Behavior = iota // steps toward the player
	BehaviorPatrol                  // runs straight, turns at random when blocked
)

// String returns the behavior name.
func (b Behavior) String() string {
	switch b {
	case BehaviorPursuit:
		return "pursuit"
	case BehaviorPatrol:
		return "patrol"
	default:
		return "unknown"
	}
}

// Pursuer is an AI-controlled adversary.
type Pursuer struct {
	ID       int
	Pos      Position
	Facing   Direction
	Behavior Behavior
	Speed    float64 // tiles per second
	Frozen   bool
	Progress float64 // sub-tile progress in [0, 1)
}

// SpawnPursuers places up to count pursuers on the home tiles in scan order.
// The first pursuer chases, the rest patrol. All start facing up.
func SpawnPursuers(g *Grid, count int, speedMultiplier, baseSpeed float64) []Pursuer {
	homes := g.FindPursuerHomes()
	n := min(count, len(homes))
	if n <= 0 {
		return nil
	}

	pursuers := make([]Pursuer, n)
	for i := range pursuers {
		behavior := BehaviorPatrol
		if i == 0 {
			behavior = BehaviorPursuit
		}
		pursuers[i] = Pursuer{
			ID:       i,
			Pos:      homes[i],
			Facing:   DirUp,
			Behavior: behavior,
			Speed:    baseSpeed * speedMultiplier,
		}
	}
	return pursuers
}

// StepPursuer moves p by exactly one tile according to its behavior, then
// applies tunnel wrap. rng is only consulted by patrolling pursuers.
func StepPursuer(p *Pursuer, target Position, g *Grid, rng *rand.Rand) {
	switch p.Behavior {
	case BehaviorPursuit:
		stepPursuit(p, target, g)
	default:
		stepPatrol(p, g, rng)
	}
	p.Pos = g.Wrap(p.Pos)
}

func stepPursuit(p *Pursuer, target Position, g *Grid) {
	candidates := pursuerCandidates(p, g)
	if len(candidates) == 0 {
		reverseIfPossible(p, g)
		return
	}

	// Strict comparison keeps the first candidate on ties.
	best := candidates[0]
	bestDist := p.Pos.Step(best).Manhattan(target)
	for _, d := range candidates[1:] {
		if dist := p.Pos.Step(d).Manhattan(target); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	p.Facing = best
	p.Pos = p.Pos.Step(best)
}

func stepPatrol(p *Pursuer, g *Grid, rng *rand.Rand) {
	if ahead := p.Pos.Step(p.Facing); pursuerCanEnter(ahead, g) {
		p.Pos = ahead
		return
	}

	candidates := pursuerCandidates(p, g)
	if len(candidates) == 0 {
		reverseIfPossible(p, g)
		return
	}
	d := candidates[rng.Intn(len(candidates))]
	p.Facing = d
	p.Pos = p.Pos.Step(d)
}

// pursuerCandidates returns the enterable directions in tie-break order,
// excluding the reversal of the current facing.
func pursuerCandidates(p *Pursuer, g *Grid) []Direction {
	candidates := make([]Direction, 0, len(Directions))
	reverse := p.Facing.Opposite()
	for _, d := range Directions {
		if d == reverse {
			continue
		}
		if pursuerCanEnter(p.Pos.Step(d), g) {
			candidates = append(candidates, d)
		}
	}
	return candidates
}

// pursuerCanEnter treats home tiles as blocked once a pursuer is outside.
func pursuerCanEnter(pos Position, g *Grid) bool {
	if !g.IsWalkable(pos.X, pos.Y) {
		return false
	}
	return g.At(pos) != TileHome
}

func reverseIfPossible(p *Pursuer, g *Grid) {
	back := p.Facing.Opposite()
	pos := p.Pos.Step(back)
	if g.IsWalkable(pos.X, pos.Y) {
		p.Facing = back
		p.Pos = pos
	}
}
