package colony

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ant-colony/constant"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/roster"
	"github.com/lixenwraith/ant-colony/terminal"
)

// Renderer is the slice of terminal.Console an ant needs
type Renderer interface {
	Render(next terminal.Mark, glyph rune, prev terminal.Mark)
	Erase(prev terminal.Mark)
}

// Sleeper blocks for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

// Ant is one independently scheduled entity
type Ant struct {
	ID     string
	Name   string
	Motion Motion
}

// Colony supervises one goroutine per ant
type Colony struct {
	RunID string

	console *terminal.Console
	ants    []Ant
	sleep   Sleeper
}

// Option configures a Colony
type Option func(*Colony)

// WithSleeper replaces the timer-based pacing sleep
func WithSleeper(s Sleeper) Option {
	return func(c *Colony) {
		c.sleep = s
	}
}

// New builds a colony from a validated roster
func New(console *terminal.Console, r roster.Roster, opts ...Option) (*Colony, error) {
	c := &Colony{
		RunID:   uuid.NewString(),
		console: console,
		sleep:   sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, e := range r.Entities {
		m, err := NewMotion(e)
		if err != nil {
			return nil, fmt.Errorf("entity %s: %w", e.Name, err)
		}
		c.ants = append(c.ants, Ant{
			ID:     uuid.NewString(),
			Name:   e.Name,
			Motion: m,
		})
	}
	return c, nil
}

// NewMotion maps a roster entity to its motion pattern
func NewMotion(e roster.Entity) (Motion, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	switch e.Kind {
	case roster.KindWorker:
		return NewWorker(e.X, e.Y, e.Speed, e.Symbol()), nil
	case roster.KindWarrior:
		return NewWarrior(e.X, e.Y, e.Radius, e.Speed, e.Symbol()), nil
	}
	return nil, fmt.Errorf("%w: %q", roster.ErrUnknownKind, e.Kind)
}

// Ants returns the colony members in roster order
func (c *Colony) Ants() []Ant {
	return c.ants
}

// Run starts every ant, waits for all of them, then announces completion
// An ant's failure never stops its siblings; the first error is returned
func (c *Colony) Run(ctx context.Context) error {
	log.Printf("colony %s: starting %d ants", c.RunID, len(c.ants))
	started := time.Now()

	// Plain group, not WithContext: one ant failing must not cancel the rest
	var g errgroup.Group
	for _, ant := range c.ants {
		g.Go(func() error {
			return core.Guard(func() error {
				return animate(ctx, c.console, c.sleep, ant)
			})
		})
	}
	err := g.Wait()

	notice := constant.CompletionNotice
	if ctx.Err() != nil {
		notice = constant.InterruptedNotice
	}
	c.console.Announce(notice)

	stats := c.console.Stats()
	log.Printf("colony %s: finished in %v (draws=%d erases=%d dropped=%d write_errors=%d)",
		c.RunID, time.Since(started).Round(time.Millisecond),
		stats.Draws, stats.Erases, stats.Dropped, stats.WriteErrors)

	if err != nil {
		log.Printf("colony %s: %v", c.RunID, err)
	}
	return err
}

// animate walks the ant's plan against r
// The last drawn glyph is always erased, including on cancellation or panic
func animate(ctx context.Context, r Renderer, sleep Sleeper, ant Ant) error {
	m := ant.Motion
	glyph := m.Glyph()
	delay := m.Delay()
	plan := m.Plan()

	log.Printf("ant %s (%s): %d frames, delay %v", ant.Name, ant.ID, len(plan), delay)

	prev := terminal.NoMark
	defer func() {
		r.Erase(prev)
	}()

	for _, f := range plan {
		next := f.Mark()
		r.Render(next, glyph, prev)
		prev = next

		if err := sleep(ctx, delay+f.Hold); err != nil {
			return fmt.Errorf("ant %s: %w", ant.Name, err)
		}
	}

	log.Printf("ant %s (%s): done", ant.Name, ant.ID)
	return nil
}

// sleepContext is the default Sleeper
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
