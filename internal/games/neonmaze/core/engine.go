package core

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-maze/internal/config"
)

// State is the authoritative game state.
type State struct {
	Status           Status
	Round            int
	Score            int
	HighScore        int
	Lives            int
	Player           Player
	Pursuers         []Pursuer
	Items            []Item
	Effects          []Effect
	PelletsRemaining int
	Combo            float64
	Grid             *Grid
}

// Clone creates a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Pursuers = append([]Pursuer(nil), s.Pursuers...)
	c.Items = append([]Item(nil), s.Items...)
	c.Effects = append([]Effect(nil), s.Effects...)
	if s.Grid != nil {
		c.Grid = s.Grid.Clone()
	}
	return &c
}

// Options configures a new Engine.
type Options struct {
	Config config.NeonMazeConfig
	Store  HighScoreStore   // nil keeps the high score in memory only
	Seed   int64            // seeds patrol turns and item drops
	Logger *log.Logger      // nil discards engine logs
	Now    func() time.Time // clock for high score timestamps, nil means time.Now
}

// Engine advances the simulation. It is not safe for concurrent use; one
// driver owns it and calls Update once per tick.
type Engine struct {
	cfg     config.NeonMazeConfig
	scaling config.RoundScaling
	store   HighScoreStore
	log     *log.Logger
	now     func() time.Time
	rng     *rand.Rand

	state      *State
	spawn      Position // player spawn of the current grid
	lastOpen   Position // last non-wall tile the player stood on
	spawnTimer float64  // ms since the last item spawn attempt
}

// NewEngine creates an engine in the Menu status and loads the persisted high score.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		cfg:     opts.Config,
		scaling: config.NewRoundScaling(opts.Config.Rounds),
		store:   opts.Store,
		log:     opts.Logger,
		now:     opts.Now,
		rng:     rand.New(rand.NewSource(opts.Seed)),
	}
	if e.store == nil {
		e.store = NewMemoryStore()
	}
	if e.log == nil {
		e.log = log.New(io.Discard)
	}
	if e.now == nil {
		e.now = time.Now
	}

	e.state = e.newRoundState(1)
	e.state.HighScore = e.loadHighScore()
	return e
}

// State returns the live state. Callers other than the owning driver should
// use Snapshot.
func (e *Engine) State() *State {
	return e.state
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() *State {
	return e.state.Clone()
}

// StartGame resets to round 1 and starts playing. The high score survives.
func (e *Engine) StartGame() {
	high := max(e.state.HighScore, e.state.Score)
	e.state = e.newRoundState(1)
	e.state.HighScore = high
	e.state.Status = StatusPlaying
	e.state.Pursuers = e.spawnPursuers(1)
	e.log.Debug("game started", "pellets", e.state.PelletsRemaining)
}

// NextRound advances from RoundClear to the next round. Score, high score
// and lives carry over; everything else is rebuilt. It does nothing in any
// other status.
func (e *Engine) NextRound() {
	prev := e.state
	if prev.Status != StatusRoundClear {
		return
	}

	round := prev.Round + 1
	e.state = e.newRoundState(round)
	e.state.Score = prev.Score
	e.state.HighScore = prev.HighScore
	e.state.Lives = prev.Lives
	e.state.Status = StatusPlaying
	e.state.Pursuers = e.spawnPursuers(round)
	e.log.Debug("round started", "round", round, "pursuers", len(e.state.Pursuers))
}

// Pause stops time while playing.
func (e *Engine) Pause() {
	if e.state.Status == StatusPlaying {
		e.state.Status = StatusPaused
	}
}

// Resume continues a paused game.
func (e *Engine) Resume() {
	if e.state.Status == StatusPaused {
		e.state.Status = StatusPlaying
	}
}

// TogglePause switches between Playing and Paused.
func (e *Engine) TogglePause() {
	switch e.state.Status {
	case StatusPlaying:
		e.Pause()
	case StatusPaused:
		e.Resume()
	}
}

// SetDirection buffers a turn. It is applied as soon as the tile in that
// direction can be entered.
func (e *Engine) SetDirection(d Direction) {
	if d == DirNone {
		return
	}
	e.state.Player.Next = d
}

// UseSkill requests a skill and reports whether it fired. A dash fires only
// while playing, with no dash running and the cooldown at zero.
func (e *Engine) UseSkill(skill Skill) bool {
	s := e.state
	if s.Status != StatusPlaying || skill != SkillDash {
		return false
	}
	if HasEffect(s.Effects, EffectDash) || s.Player.DashCooldownMs > 0 {
		return false
	}

	s.Effects = AddEffect(s.Effects, NewEffect(EffectDash, e.cfg.Effects))
	s.Player.Dashing = true
	s.Player.DashCooldownMs = e.cfg.Effects.DashCooldownMs
	return true
}

// Update advances the simulation by dtMs milliseconds. It does nothing
// unless the game is playing. Callers clamp dtMs.
func (e *Engine) Update(dtMs float64) {
	s := e.state
	if s.Status != StatusPlaying {
		return
	}
	dtMs = max(dtMs, 0)
	p := &s.Player

	p.InvulnerableMs = max(0, p.InvulnerableMs-dtMs)
	p.DashCooldownMs = max(0, p.DashCooldownMs-dtMs)

	// A buffered turn may commit while the player is pressed against a wall.
	if p.Next != DirNone && e.canEnter(p.Pos.Step(p.Next)) {
		p.Facing = p.Next
		p.Next = DirNone
		p.Progress = 0
	}

	e.movePlayer(dtMs)

	if !e.canEnter(p.Pos.Step(p.Facing)) {
		p.Progress = 0
	}

	e.collectPellet()
	e.pickUpItem()
	e.updateEffects(dtMs)
	e.movePursuers(dtMs)
	e.checkCollision()
	e.spawnItems(dtMs)

	if s.Status == StatusPlaying && s.PelletsRemaining <= 0 {
		s.Status = StatusRoundClear
		e.log.Debug("round clear", "round", s.Round, "score", s.Score)
	}
}

// movePlayer steps the player one tile per whole unit of progress.
func (e *Engine) movePlayer(dtMs float64) {
	s := e.state
	p := &s.Player

	p.Progress += p.Speed * dtMs / 1000
	for p.Progress >= 1 {
		p.Progress--

		if p.Next != DirNone && e.canEnter(p.Pos.Step(p.Next)) {
			p.Facing = p.Next
			p.Next = DirNone
		}

		target := p.Pos.Step(p.Facing)
		if !e.canEnter(target) {
			p.Progress = 0
			break
		}
		p.Pos = s.Grid.Wrap(target)
		if s.Grid.At(p.Pos) != TileWall {
			e.lastOpen = p.Pos
		}
		e.collectPellet()
	}
}

// canEnter reports whether the player may step onto pos. A dash passes
// through walls but never leaves the grid except through the tunnel.
func (e *Engine) canEnter(pos Position) bool {
	g := e.state.Grid
	if e.state.Player.Dashing && g.InBounds(pos) {
		return true
	}
	return g.IsWalkable(pos.X, pos.Y)
}

func (e *Engine) collectPellet() {
	s := e.state
	pos := s.Player.Pos

	var base int
	switch s.Grid.At(pos) {
	case TilePellet:
		base = e.cfg.Scoring.Pellet
	case TilePowerPellet:
		base = e.cfg.Scoring.PowerPellet
	default:
		return
	}

	s.Grid.Set(pos, TileEmpty)
	s.PelletsRemaining--
	s.Score += int(math.Round(float64(base) * s.Combo))
	e.updateHighScore()
}

func (e *Engine) pickUpItem() {
	s := e.state
	for i, it := range s.Items {
		if it.Pos != s.Player.Pos {
			continue
		}
		s.Items = append(s.Items[:i], s.Items[i+1:]...)
		s.Effects = AddEffect(s.Effects, NewEffect(it.Kind, e.cfg.Effects))
		e.log.Debug("item picked up", "kind", it.Kind, "pos", it.Pos)
		return
	}
}

func (e *Engine) updateEffects(dtMs float64) {
	s := e.state
	p := &s.Player
	wasDashing := p.Dashing

	s.Effects = TickEffects(s.Effects, dtMs)
	s.Combo = ResolveEffects(s.Effects, s.Pursuers, p, e.cfg.Effects)

	if wasDashing && !p.Dashing {
		if p.DashCooldownMs <= 0 {
			p.DashCooldownMs = e.cfg.Effects.DashCooldownMs
		}
		// A dash that ends inside a wall returns the player to open floor.
		if s.Grid.At(p.Pos) == TileWall {
			p.Pos = e.lastOpen
			p.Progress = 0
		}
	}
}

func (e *Engine) movePursuers(dtMs float64) {
	s := e.state
	seconds := dtMs / 1000
	for i := range s.Pursuers {
		gp := &s.Pursuers[i]
		speed := gp.Speed
		if gp.Frozen {
			speed *= e.cfg.Pursuers.FrozenFactor
		}

		gp.Progress += speed * seconds
		for gp.Progress >= 1 {
			gp.Progress--
			StepPursuer(gp, s.Player.Pos, s.Grid, e.rng)
		}

		ahead := gp.Pos.Step(gp.Facing)
		if !s.Grid.IsWalkable(ahead.X, ahead.Y) {
			gp.Progress = 0
		}
	}
}

// checkCollision costs at most one life per tick.
func (e *Engine) checkCollision() {
	s := e.state
	p := &s.Player
	if p.InvulnerableMs > 0 {
		return
	}

	for _, gp := range s.Pursuers {
		if gp.Pos != p.Pos {
			continue
		}
		s.Lives--
		if s.Lives <= 0 {
			s.Lives = 0
			s.Status = StatusGameOver
			e.log.Debug("game over", "round", s.Round, "score", s.Score)
			return
		}
		p.Pos = e.spawn
		p.Progress = 0
		p.InvulnerableMs = e.cfg.Player.InvulnerableMs
		e.lastOpen = e.spawn
		e.log.Debug("life lost", "lives", s.Lives, "pursuer", gp.ID)
		return
	}
}

func (e *Engine) spawnItems(dtMs float64) {
	s := e.state
	interval := e.cfg.Items.SpawnIntervalMs
	if interval <= 0 {
		return
	}

	e.spawnTimer += dtMs
	for e.spawnTimer >= interval {
		e.spawnTimer -= interval
		if it, ok := TrySpawnItem(s.Grid, s.Items, e.scaling.ItemSpawnChance(s.Round), e.rng); ok {
			s.Items = append(s.Items, it)
			e.log.Debug("item spawned", "kind", it.Kind, "pos", it.Pos)
		}
	}
}

func (e *Engine) updateHighScore() {
	s := e.state
	if s.Score <= s.HighScore {
		return
	}
	s.HighScore = s.Score
	if err := e.store.SaveHighScore(e.cfg.Scoring.HighScoreKey, s.HighScore, e.now()); err != nil {
		e.log.Debug("high score not saved", "err", err)
	}
}

func (e *Engine) loadHighScore() int {
	score, err := e.store.LoadHighScore(e.cfg.Scoring.HighScoreKey)
	if err != nil {
		e.log.Debug("high score not loaded", "err", err)
		return 0
	}
	return max(score, 0)
}

// newRoundState builds the board for a round: a fresh grid with the spawn
// tile cleared, the player on it and no pursuers, items or effects.
func (e *Engine) newRoundState(round int) *State {
	g := NewGrid()
	spawn := g.FindSpawn()
	g.Set(spawn, TileEmpty)

	facing, ok := ParseDirection(e.cfg.Player.InitialDirection)
	if !ok {
		facing = DirLeft
	}

	e.spawn = spawn
	e.lastOpen = spawn
	e.spawnTimer = 0

	return &State{
		Status: StatusMenu,
		Round:  round,
		Lives:  e.cfg.Player.Lives,
		Player: Player{
			Pos:    spawn,
			Facing: facing,
			Speed:  e.cfg.Player.Speed,
		},
		PelletsRemaining: g.CountPellets(),
		Combo:            1,
		Grid:             g,
	}
}

func (e *Engine) spawnPursuers(round int) []Pursuer {
	return SpawnPursuers(e.state.Grid, e.scaling.PursuerCount(round), e.scaling.SpeedMultiplier(round), e.cfg.Pursuers.BaseSpeed)
}
