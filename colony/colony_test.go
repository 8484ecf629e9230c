package colony

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/ant-colony/constant"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/roster"
	"github.com/lixenwraith/ant-colony/terminal"
)

var testCanvas = terminal.Canvas{Width: constant.CanvasWidth, Height: constant.CanvasHeight}

// sleepRecorder is an instant Sleeper that remembers requested durations
type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.delays = append(s.delays, d)
	s.mu.Unlock()
	return ctx.Err()
}

func newTestColony(t *testing.T, r roster.Roster) (*Colony, *terminal.Console, *bytes.Buffer, *sleepRecorder) {
	t.Helper()

	var buf bytes.Buffer
	console := terminal.NewConsole(terminal.NewANSISurface(&buf), testCanvas)
	rec := &sleepRecorder{}

	c, err := New(console, r, WithSleeper(rec.sleep))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, console, &buf, rec
}

func TestNewBuildsOneAntPerEntity(t *testing.T) {
	c, _, _, _ := newTestColony(t, roster.Default())

	ants := c.Ants()
	if len(ants) != 5 {
		t.Fatalf("Expected 5 ants, got %d", len(ants))
	}

	ids := make(map[string]bool)
	for _, ant := range ants {
		if ant.ID == "" || ids[ant.ID] {
			t.Errorf("Ant %s has empty or duplicate ID %q", ant.Name, ant.ID)
		}
		ids[ant.ID] = true
	}

	if _, ok := ants[0].Motion.(*Worker); !ok {
		t.Errorf("Expected first ant to be a worker, got %T", ants[0].Motion)
	}
	if _, ok := ants[4].Motion.(*Warrior); !ok {
		t.Errorf("Expected last ant to be a warrior, got %T", ants[4].Motion)
	}
	if c.RunID == "" {
		t.Error("Expected a run ID")
	}
}

func TestNewRejectsInvalidEntity(t *testing.T) {
	var buf bytes.Buffer
	console := terminal.NewConsole(terminal.NewANSISurface(&buf), testCanvas)

	tests := []struct {
		name   string
		entity roster.Entity
		want   error
	}{
		{"UnknownKind", roster.Entity{Name: "queen", Kind: "queen"}, roster.ErrUnknownKind},
		{"WideGlyph", roster.Entity{Name: "w", Kind: roster.KindWorker, Speed: 10, Glyph: "蚁"}, roster.ErrInvalidGlyph},
		{"ControlGlyph", roster.Entity{Name: "w", Kind: roster.KindWorker, Speed: 10, Glyph: "\x1b"}, roster.ErrInvalidGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := roster.Roster{Entities: []roster.Entity{tt.entity}}
			if _, err := New(console, bad); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestRunDefaultRoster runs the full colony and checks it terminates cleanly
func TestRunDefaultRoster(t *testing.T) {
	c, console, buf, rec := newTestColony(t, roster.Default())

	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Colony did not terminate")
	}

	totalFrames := 0
	for _, ant := range c.Ants() {
		totalFrames += len(ant.Motion.Plan())
	}

	stats := console.Stats()
	if int(stats.Draws) != totalFrames {
		t.Errorf("Expected %d draws, got %d", totalFrames, stats.Draws)
	}
	// Every drawn glyph is erased exactly once: by the next frame or the final erase
	if stats.Erases != stats.Draws {
		t.Errorf("Expected erases (%d) to match draws (%d)", stats.Erases, stats.Draws)
	}
	if stats.Dropped != 0 {
		t.Errorf("Default roster should stay on canvas, dropped %d", stats.Dropped)
	}

	if len(rec.delays) != totalFrames {
		t.Errorf("Expected %d sleeps, got %d", totalFrames, len(rec.delays))
	}

	held := 0
	for _, d := range rec.delays {
		if d >= constant.WorkerPause {
			held++
		}
	}
	if held != 3 {
		t.Errorf("Expected 3 workers to pause at the corner, got %d", held)
	}

	// Completion notice at row Height+2, below the park row
	expected := "\x1b[28;1H" + constant.CompletionNotice + "\n"
	if !strings.HasSuffix(buf.String(), expected) {
		t.Errorf("Expected output to end with %q", expected)
	}
}

func TestRunCancelledErasesAndAnnounces(t *testing.T) {
	c, console, buf, _ := newTestColony(t, roster.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}

	stats := console.Stats()
	if stats.Draws != 5 {
		t.Errorf("Expected one draw per ant before cancellation, got %d", stats.Draws)
	}
	if stats.Erases != stats.Draws {
		t.Errorf("Every drawn glyph should be erased, draws=%d erases=%d", stats.Draws, stats.Erases)
	}
	if !strings.HasSuffix(buf.String(), constant.InterruptedNotice+"\n") {
		t.Errorf("Expected interrupted notice, got tail %q", tail(buf.String(), 40))
	}
}

type panicMotion struct{}

func (panicMotion) Glyph() rune          { return 'X' }
func (panicMotion) Delay() time.Duration { return 0 }
func (panicMotion) Plan() []Frame        { panic("broken plan") }

func TestRunPanicIsolatedToOneAnt(t *testing.T) {
	c, console, _, _ := newTestColony(t, roster.Default())
	c.ants = append(c.ants, Ant{ID: "bad", Name: "bad", Motion: panicMotion{}})

	err := c.Run(context.Background())

	var pe *core.PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected *core.PanicError, got %v", err)
	}

	// The healthy ants still ran to completion
	totalFrames := 0
	for _, ant := range c.Ants()[:5] {
		totalFrames += len(ant.Motion.Plan())
	}
	if got := int(console.Stats().Draws); got != totalFrames {
		t.Errorf("Expected %d draws from healthy ants, got %d", totalFrames, got)
	}
}

// renderCall captures one Renderer invocation
type renderCall struct {
	next, prev terminal.Mark
	glyph      rune
	erase      bool
}

type fakeRenderer struct {
	calls []renderCall
}

func (f *fakeRenderer) Render(next terminal.Mark, glyph rune, prev terminal.Mark) {
	f.calls = append(f.calls, renderCall{next: next, glyph: glyph, prev: prev})
}

func (f *fakeRenderer) Erase(prev terminal.Mark) {
	f.calls = append(f.calls, renderCall{prev: prev, erase: true})
}

func TestAnimateChainsPreviousMarks(t *testing.T) {
	r := &fakeRenderer{}
	rec := &sleepRecorder{}
	ant := Ant{Name: "w", Motion: NewWorker(3, 4, 20, 'W')}

	if err := animate(context.Background(), r, rec.sleep, ant); err != nil {
		t.Fatalf("animate: %v", err)
	}

	plan := ant.Motion.Plan()
	if len(r.calls) != len(plan)+1 {
		t.Fatalf("Expected %d calls, got %d", len(plan)+1, len(r.calls))
	}

	if r.calls[0].prev.Valid {
		t.Errorf("First render should have no previous mark, got %+v", r.calls[0].prev)
	}
	for i := 1; i < len(plan); i++ {
		if r.calls[i].prev != r.calls[i-1].next {
			t.Fatalf("Call %d: prev %+v does not match earlier next %+v", i, r.calls[i].prev, r.calls[i-1].next)
		}
		if r.calls[i].glyph != 'W' {
			t.Fatalf("Call %d: unexpected glyph %q", i, r.calls[i].glyph)
		}
	}

	last := r.calls[len(r.calls)-1]
	if !last.erase || last.prev != r.calls[len(plan)-1].next {
		t.Errorf("Expected final erase of last mark, got %+v", last)
	}
	if last.prev != terminal.At(3, 4) {
		t.Errorf("Worker should finish back at start, erased %+v", last.prev)
	}

	for i, d := range rec.delays {
		expected := 50*time.Millisecond + plan[i].Hold
		if d != expected {
			t.Fatalf("Sleep %d: expected %v, got %v", i, expected, d)
		}
	}
}

func TestSleepContext(t *testing.T) {
	if err := sleepContext(context.Background(), 0); err != nil {
		t.Errorf("Zero sleep: expected nil, got %v", err)
	}
	if err := sleepContext(context.Background(), time.Millisecond); err != nil {
		t.Errorf("Short sleep: expected nil, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if err := sleepContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancelled sleep: expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Cancelled sleep should return immediately")
	}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
