package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/blastgrid/internal/gamedata"
	"github.com/samdwyer/blastgrid/internal/telemetry"
	"github.com/samdwyer/blastgrid/internal/ui"
)

// Game holds the terminal front end and the running match.
type Game struct {
	cfg      Config
	catalog  *gamedata.Catalog
	screen   *ui.Screen
	renderer *ui.Renderer
	match    *Match
	logger   *slog.Logger
}

// New creates a new game instance.
func New(cfg Config, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTick
	}

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load game data: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	return &Game{
		cfg:      cfg,
		catalog:  catalog,
		screen:   screen,
		renderer: ui.NewRenderer(screen, catalog),
		logger:   logger,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	// Initialize game (traced)
	initCtx, initSpan := tracer.Start(ctx, "game.init")
	g.match = NewMatch(initCtx, g.cfg, g.catalog, g.logger)
	initSpan.SetAttributes(
		attribute.Int("arena.width", g.match.Arena.Width),
		attribute.Int("arena.height", g.match.Arena.Height),
		attribute.Int("arena.destructibles", g.match.Remaining()),
		attribute.Int64("tick_ms", g.cfg.TickInterval.Milliseconds()),
	)
	initSpan.End()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	eg, ctx := errgroup.WithContext(ctx)

	// PollEvent blocks until the screen is finalized, which the tick loop
	// does on exit.
	eg.Go(func() error {
		g.pollEvents(ctx, events)
		return nil
	})
	eg.Go(func() error {
		defer cancel()
		defer g.screen.Close()
		g.tickLoop(ctx, events)
		return nil
	})

	return eg.Wait()
}

// pollEvents forwards terminal events until the screen closes.
func (g *Game) pollEvents(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// tickLoop gathers input between ticks and steps the match on a fixed clock.
func (g *Game) tickLoop(ctx context.Context, events <-chan tcell.Event) {
	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	var in Input
	g.render()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quit := applyKey(ev, &in); quit {
					g.logger.Info("player quit", "elapsed", g.match.Now())
					return
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}

		case <-ticker.C:
			g.match.Step(ctx, in, g.cfg.TickInterval)
			in = Input{}
			g.render()
		}
	}
}

// applyKey folds a key press into the pending tick input.
// The latest direction wins; a bomb request sticks until the tick consumes it.
func applyKey(ev *tcell.EventKey, in *Input) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true

	case tcell.KeyUp:
		in.DX, in.DY = 0, 1
	case tcell.KeyDown:
		in.DX, in.DY = 0, -1
	case tcell.KeyLeft:
		in.DX, in.DY = -1, 0
	case tcell.KeyRight:
		in.DX, in.DY = 1, 0

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			in.PlaceBomb = true
		case 'r', 'R':
			in.Restart = true
		case 'q', 'Q':
			return true
		}
	}
	return false
}

// render draws the current match.
func (g *Game) render() {
	m := g.match
	g.renderer.Render(ui.Frame{
		Arena:    m.Arena,
		Tiles:    m.Tiles,
		Entities: m.Entities.Entities(),
		Player:   m.Player,
		Status:   statusLine(m),
	})
}

// statusLine summarizes the bomber's inventory and progress.
func statusLine(m *Match) string {
	status := fmt.Sprintf("Bombs %d/%d  Blast %d  Blocks %d",
		m.Agent.Available(), m.Agent.Capacity(), m.Agent.BlastRadius(), m.Remaining())
	if m.State() == StateCleared {
		status += "  Arena cleared! (r for next round, q to quit)"
	}
	return status
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
