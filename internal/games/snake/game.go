// Package snake implements classic Snake on a walled grid.
//
// The snake moves at a rate given in moves per second, independent of the
// platform tick rate, and speeds up a little with every food eaten.
package snake

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
)

// ID is the registered game ID.
const ID = "snake"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a grid coordinate.
type Point struct {
	X, Y int
}

// noFood marks the grid as full.
var noFood = Point{X: -1, Y: -1}

// Visual characters for rendering
const (
	HeadChar = '@'
	BodyChar = 'o'
	FoodChar = '*'
)

// Game implements Snake.
type Game struct {
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tickRate   int
	tick       uint64
	score      int

	speed    float64 // moves per second before difficulty scaling
	progress float64 // accumulated moves times tickRate

	// Snake state
	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Applied at the next move
	food      Point

	gameOver bool
	paused   bool
	err      error
}

// Package-level config overrides set from the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig resolves and validates the effective Snake configuration.
func LoadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, difficultyPreset)
	return cfg, cfg.Validate()
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Eat, grow and speed up. Walls and your own tail are fatal."
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tickRate = max(1, rc.TickRate)
	g.paused = false

	cfg, err := LoadConfig()
	if err != nil {
		g.err = err
		g.gameOver = true
		g.snake = nil
		return
	}
	g.err = nil
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.restart()
}

// restart puts a fresh snake in the middle of the grid. The RNG stream
// continues so each round gets new food positions.
func (g *Game) restart() {
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.speed = g.cfg.Speed.Initial
	g.progress = 0

	cx, cy := g.cfg.Grid.Width/2, g.cfg.Grid.Height/2
	g.snake = g.snake[:0]
	for i := 0; i < g.cfg.Grid.StartLength; i++ {
		g.snake = append(g.snake, Point{X: cx - i, Y: cy})
	}
	g.direction = DirRight
	g.nextDir = DirRight

	g.spawnFood()
}

// spawnFood places food uniformly at random among free cells, or removes it
// when the snake fills the grid.
func (g *Game) spawnFood() {
	occupied := make(map[Point]bool, len(g.snake))
	for _, seg := range g.snake {
		occupied[seg] = true
	}

	free := make([]Point, 0, g.cfg.Grid.Width*g.cfg.Grid.Height-len(g.snake))
	for y := 0; y < g.cfg.Grid.Height; y++ {
		for x := 0; x < g.cfg.Grid.Width; x++ {
			if p := (Point{X: x, Y: y}); !occupied[p] {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		g.food = noFood
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.err != nil {
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		if input.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.processInput(input)

	// Accumulate in units of 1/tickRate moves to avoid drift.
	rate := float64(g.tickRate)
	g.progress += g.MovesPerSecond()
	for g.progress >= rate && !g.gameOver {
		g.progress -= rate
		g.moveSnake()
	}

	return core.StepResult{State: g.State(), Ended: g.gameOver}
}

// MovesPerSecond returns the current speed after difficulty scaling, capped
// at the configured maximum.
func (g *Game) MovesPerSecond() float64 {
	s := g.difficulty.Speed(g.speed, g.score, int(g.tick))
	return math.Min(s, g.cfg.Speed.Max)
}

// processInput buffers a direction change for the next move.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	// Prevent instant reversal
	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// moveSnake moves the snake one cell in the buffered direction.
func (g *Game) moveSnake() {
	g.direction = g.nextDir

	head := g.snake[0]
	switch g.direction {
	case DirUp:
		head.Y--
	case DirDown:
		head.Y++
	case DirLeft:
		head.X--
	case DirRight:
		head.X++
	}

	if head.X < 0 || head.X >= g.cfg.Grid.Width || head.Y < 0 || head.Y >= g.cfg.Grid.Height {
		g.gameOver = true
		return
	}
	// The tail still counts: it has not moved yet.
	if g.isSnakeAt(head) {
		g.gameOver = true
		return
	}

	g.snake = append(g.snake, Point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = head

	if head == g.food {
		g.score++
		g.speed = math.Min(g.speed+g.cfg.Speed.Increase, g.cfg.Speed.Max)
		g.spawnFood()
		return
	}
	g.snake = g.snake[:len(g.snake)-1]
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawMessage("CONFIG ERROR", g.err.Error())
		return
	}

	// Each grid cell is two columns wide so the board looks square.
	w, h := g.cfg.Grid.Width*2+2, g.cfg.Grid.Height+2
	if dst.Width() < w || dst.Height() < h+1 {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need %dx%d", w, h+1))
		return
	}

	board := core.NewRect((dst.Width()-w)/2, 1+(dst.Height()-1-h)/2, w, h)
	dst.DrawBox(board)
	cell := func(p Point, ch rune, c core.Color) {
		x, y := board.X+1+p.X*2, board.Y+1+p.Y
		dst.SetColor(x, y, ch, c)
		dst.SetColor(x+1, y, ch, c)
	}

	if g.food != noFood {
		cell(g.food, FoodChar, core.ColorRed)
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		if i == 0 {
			cell(g.snake[i], HeadChar, core.ColorBrightGreen)
		} else {
			cell(g.snake[i], BodyChar, core.ColorGreen)
		}
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	dst.DrawTextColor(16, 0, fmt.Sprintf(" Speed: %.1f ", g.MovesPerSecond()), core.ColorGray)

	switch {
	case g.gameOver:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Err returns the configuration error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
