package game

import (
	"fmt"
	"time"

	"starfield/internal/component"
	"starfield/internal/ecs"
	"starfield/internal/factory"
	"starfield/internal/generate"
	"starfield/internal/render"
	"starfield/internal/system"

	"github.com/gdamore/tcell/v2"
)

// System priorities: generation observes last tick's position first, input
// feeds acceleration, movement integrates last.
const (
	priorityGeneration = 30
	priorityInput      = 20
	priorityMovement   = 10
)

const frameInterval = time.Second / 60

// Game owns one world, its scheduler and generators, and the screen it draws
// to. One Game serves one player session.
type Game struct {
	screen     tcell.Screen
	ownsScreen bool
	renderer   *render.Renderer

	world    *ecs.World
	sched    *ecs.Scheduler
	gen      *generate.WorldGenerator
	playerID ecs.EntityID

	// Key events buffered since the last frame. Flushed into the player's
	// InputState once per tick, before systems run. Terminals do not report
	// key releases, so the released buffer stays empty in practice; it is
	// kept so the InputState contract has both halves.
	pressed  map[tcell.Key]bool
	released map[tcell.Key]bool
}

// New creates a Game with its own terminal screen.
func New(cfg generate.Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g := NewWithScreen(screen, cfg)
	g.ownsScreen = true
	return g, nil
}

// NewWithScreen creates a Game on an already-initialized screen (SSH
// sessions hand their own screens in; Fini stays with the caller).
func NewWithScreen(screen tcell.Screen, cfg generate.Config) *Game {
	world := ecs.NewWorld()
	gen := generate.NewWorldGenerator(world, cfg)

	sched := ecs.NewScheduler()
	sched.AddSystem(system.NewGeneration(gen), priorityGeneration)
	sched.AddSystem(system.Input{}, priorityInput)
	sched.AddSystem(system.Movement{}, priorityMovement)

	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		world:    world,
		sched:    sched,
		gen:      gen,
		playerID: factory.NewPlayer(world, 0, 0, "Pilot"),
		pressed:  make(map[tcell.Key]bool),
		released: make(map[tcell.Key]bool),
	}
}

// World exposes the game's entity world.
func (g *Game) World() *ecs.World { return g.world }

// Generator exposes the world generator (the HUD and tests read it).
func (g *Game) Generator() *generate.WorldGenerator { return g.gen }

// Run drives the frame loop until the player quits or the screen closes.
// All input is serialized onto this goroutine: an event-pump goroutine feeds
// a channel, and the loop is the only place that touches the world.
func (g *Game) Run() error {
	if g.ownsScreen {
		defer g.screen.Fini()
	}

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil // screen closed / disconnected
			}
			if quit := g.handleEvent(ev); quit {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := g.step(dt); err != nil {
				return err
			}
		}
	}
}

// step advances the simulation by dt seconds and redraws.
func (g *Game) step(dt float64) error {
	g.flushInput()
	if err := g.sched.Tick(g.world, dt); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	if err := g.renderer.DrawFrame(g.world); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	fps := 0.0
	if dt > 0 {
		fps = 1 / dt
	}
	g.renderer.DrawHUD(g.world, g.gen, fps)
	g.screen.Show()
	return nil
}

// handleEvent buffers directional keys and handles the session keys.
// Returns true when the player asked to quit.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'c', 'C':
			g.gen.Decorations().Clear()
			return false
		case 'r', 'R':
			if pos := g.playerPosition(); pos != nil {
				g.gen.Decorations().Scatter(pos.X, pos.Y, generate.DefaultScatterCount)
			}
			return false
		}
		if key, ok := directionKey(ev); ok {
			g.pressed[key] = true
		}
	}
	return false
}

// directionKey maps arrows and hjkl onto the four directional key codes.
func directionKey(ev *tcell.EventKey) (tcell.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyRight, tcell.KeyUp, tcell.KeyDown:
		return ev.Key(), true
	}
	switch ev.Rune() {
	case 'h', 'H':
		return tcell.KeyLeft, true
	case 'l', 'L':
		return tcell.KeyRight, true
	case 'k', 'K':
		return tcell.KeyUp, true
	case 'j', 'J':
		return tcell.KeyDown, true
	}
	return 0, false
}

// flushInput replaces the player's InputState with the keys buffered since
// the previous frame, then resets the buffers.
func (g *Game) flushInput() {
	in := component.InputState{Pressed: g.pressed, Released: g.released}
	g.world.Add(g.playerID, in)
	g.pressed = make(map[tcell.Key]bool)
	g.released = make(map[tcell.Key]bool)
}

func (g *Game) playerPosition() *component.Position {
	c := g.world.Get(g.playerID, component.CPosition)
	if c == nil {
		return nil
	}
	pos := c.(component.Position)
	return &pos
}
