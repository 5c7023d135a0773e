package snake

import (
	"fmt"
	"math/rand"

	"github.com/arcadeworks/tui-snake/internal/config"
	"github.com/arcadeworks/tui-snake/internal/core"
)

// Outcome is the result of a single tick of the state machine.
type Outcome int

const (
	OutcomeNone Outcome = iota // Paused, game over or degenerate board; nothing moved
	OutcomeMoved
	OutcomeAteFood
	OutcomeAteSuperFood
	OutcomeWallCollision
	OutcomeSelfCollision
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMoved:
		return "moved"
	case OutcomeAteFood:
		return "ate_food"
	case OutcomeAteSuperFood:
		return "ate_super_food"
	case OutcomeWallCollision:
		return "wall_collision"
	case OutcomeSelfCollision:
		return "self_collision"
	default:
		return "unknown"
	}
}

// GameOver reports whether the outcome ends the game.
func (o Outcome) GameOver() bool {
	return o == OutcomeWallCollision || o == OutcomeSelfCollision
}

// SuperFood is the time-limited bonus item.
type SuperFood struct {
	Pos core.Point
	TTL int // Remaining ticks; always positive while active
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	Outcome Outcome
	Speed   SpeedMode // Speed mode for the next tick interval
	State   core.GameState
}

// Smallest board (border edges) that still leaves room to play after a
// resize. The CLI enforces the 30x10 terminal minimum before startup; this
// only guards against the window shrinking mid-game.
const (
	minBoardW = 12
	minBoardH = 6
)

// Board HUD rows below the border: one score line.
const hudRows = 1

const initialLength = 3

// Game implements the snake state machine.
type Game struct {
	cfg     config.SnakeConfig
	rng     *rand.Rand
	spawner *Spawner
	tick    uint64

	// Snake state
	snake []core.Point // Head at index 0
	dir   Direction

	// Board state
	bounds core.Bounds
	food   core.Point
	super  *SuperFood // nil while absent

	score    int
	gameOver bool
	paused   bool
	tooSmall bool

	// Screen dimensions
	screenW int
	screenH int
}

// New creates a game with the given gameplay configuration.
// Call Reset before the first Step.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes or restarts the game: fresh snake, zero score, fresh
// food, no super food.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.spawner = NewSpawner(g.rng)
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.super = nil
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH

	// Border edges: one spare column on the right, score line below.
	g.bounds = core.NewBounds(rt.ScreenW-2, rt.ScreenH-1-hudRows)

	if g.bounds.W < minBoardW || g.bounds.H < minBoardH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.initSnake()
	g.food = g.spawner.PlaceFood(g.isSnakeAt, nil, g.bounds)
}

// initSnake places the initial 3-segment snake centered, moving right.
func (g *Game) initSnake() {
	cx := g.bounds.W / 2
	cy := g.bounds.H / 2

	g.snake = make([]core.Point, 0, initialLength)
	for i := 0; i < initialLength; i++ {
		g.snake = append(g.snake, core.Point{X: cx - i, Y: cy})
	}
	g.dir = DirRight
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick driven by the action observed since
// the previous tick. Restart is only honored on the game over screen.
func (g *Game) Step(act core.Action) StepResult {
	g.tick++

	if act == core.ActionRestart && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return StepResult{Outcome: OutcomeNone, Speed: SpeedNormal, State: g.State()}
	}

	if act == core.ActionPause && !g.gameOver && !g.tooSmall {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return StepResult{Outcome: OutcomeNone, Speed: SpeedNormal, State: g.State()}
	}

	req, speed := MapInput(act, g.dir)
	outcome := g.Tick(req)
	if outcome.GameOver() {
		speed = SpeedNormal
	}
	return StepResult{Outcome: outcome, Speed: speed, State: g.State()}
}

// Tick runs one step of the movement rules with the requested direction.
//
// The direction change commits before the move, so the snake can turn on
// the tick it would otherwise collide. Reversal requests are ignored. On a
// collision outcome the snake is left unchanged and the game is over.
func (g *Game) Tick(req Direction) Outcome {
	if req != g.dir && req != g.dir.Opposite() {
		g.dir = req
	}

	newHead := g.snake[0].Add(g.dir.Delta())

	if !g.bounds.Contains(newHead) {
		g.gameOver = true
		return OutcomeWallCollision
	}
	if g.isSnakeAt(newHead) {
		g.gameOver = true
		return OutcomeSelfCollision
	}

	g.snake = append([]core.Point{newHead}, g.snake...)

	var outcome Outcome
	ateSuper := false
	switch {
	case g.super != nil && newHead == g.super.Pos:
		ateSuper = true
		g.score += g.cfg.Scoring.SuperFoodPoints
		// Stack extra segments on the tail; they unstack over the next
		// ticks as the tail stops being popped.
		tail := g.snake[len(g.snake)-1]
		for i := 0; i < g.cfg.SuperFood.ExtraGrowth; i++ {
			g.snake = append(g.snake, tail)
		}
		g.super = nil
		g.trySpawnSuperFood()
		outcome = OutcomeAteSuperFood

	case newHead == g.food:
		g.score += g.cfg.Scoring.FoodPoints
		var avoid *core.Point
		if g.super != nil {
			avoid = &g.super.Pos
		}
		g.food = g.spawner.PlaceFood(g.isSnakeAt, avoid, g.bounds)
		if g.super == nil {
			g.trySpawnSuperFood()
		}
		outcome = OutcomeAteFood

	default:
		g.snake = g.snake[:len(g.snake)-1]
		outcome = OutcomeMoved
	}

	if g.super != nil && !ateSuper {
		g.super.TTL--
		if g.super.TTL <= 0 {
			g.super = nil
		}
	}

	return outcome
}

// trySpawnSuperFood rolls the spawner for a bonus item away from the snake
// and the regular food.
func (g *Game) trySpawnSuperFood() {
	pos, ttl, ok := g.spawner.MaybeSpawnSuperFood(
		g.isSnakeAt, g.food, g.bounds,
		g.cfg.SuperFood.ChanceDenominator,
		g.cfg.SuperFood.SpawnAttempts,
		g.cfg.SuperFood.TTLTicks,
	)
	if ok {
		g.super = &SuperFood{Pos: pos, TTL: ttl}
	}
}

// Dir returns the current movement direction.
func (g *Game) Dir() Direction {
	return g.dir
}

// Bounds returns the current board bounds.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Length:   len(g.snake),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Snapshot captures the observable state of the game for tests and debugging.
type Snapshot struct {
	Tick     uint64
	Score    int
	Length   int
	Head     core.Point
	Dir      Direction
	Food     core.Point
	Super    *SuperFood
	GameOver bool
	Paused   bool
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Length:   len(g.snake),
		Dir:      g.dir,
		Food:     g.food,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if len(g.snake) > 0 {
		snap.Head = g.snake[0]
	}
	if g.super != nil {
		s := *g.super
		snap.Super = &s
	}
	return snap
}

// Render draws the game into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Border around the playable interior
	dst.DrawBox(0, 0, g.bounds.W+1, g.bounds.H+1, core.ColorWhite)

	// Food
	dst.SetColored(g.food.X, g.food.Y, '*', core.ColorBrightRed)

	// Super food
	if g.super != nil {
		dst.SetColored(g.super.Pos.X, g.super.Pos.Y, '$', core.ColorBrightMagenta)
	}

	// Snake
	for i, seg := range g.snake {
		if i == 0 {
			dst.SetColored(seg.X, seg.Y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColored(seg.X, seg.Y, 'o', core.ColorGreen)
		}
	}

	// Score line under the border
	hud := fmt.Sprintf(" Score: %d  Length: %d", g.score, len(g.snake))
	if g.super != nil {
		hud += fmt.Sprintf("  Bonus expires in %d", g.super.TTL)
	}
	dst.DrawTextColored(1, g.bounds.H+1, hud, core.ColorYellow)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "GAME OVER",
			fmt.Sprintf("Final Score: %d   Length: %d", g.score, len(g.snake)),
			"Press R to restart or Q to quit")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderOverlay draws a centered message box over the board.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	boxW := maxLen + 4
	boxH := 2*len(lines) + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	for i, line := range lines {
		dst.DrawTextCentered(boxY+1+2*i, line)
	}
}
