package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ant-colony/colony"
	"github.com/lixenwraith/ant-colony/constant"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/roster"
	"github.com/lixenwraith/ant-colony/terminal"
)

var (
	rosterFlag  = flag.String("roster", "", "Roster file (.toml, .yaml); built-in colony when empty")
	backendFlag = flag.String("backend", "ansi", "Render backend: ansi, tcell")
	debugFlag   = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
)

// tcellLinger keeps the tcell screen up long enough to read the final notice
const tcellLinger = 2 * time.Second

func main() {
	os.Exit(run())
}

// run wires the colony and returns the process exit code
// Deferred teardown runs before main exits
func run() int {
	// Panic Recovery: Ensure terminal is reset even if the colony crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	r, err := loadRoster(*rosterFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid roster: %v\n", err)
		return 1
	}

	canvas := terminal.Canvas{Width: constant.CanvasWidth, Height: constant.CanvasHeight}
	checkTerminalSize(canvas)

	surface, fini, err := openSurface(*backendFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize %s backend: %v\n", *backendFlag, err)
		return 1
	}
	core.SetCrashCleanup(fini)

	console := terminal.NewConsole(surface, canvas)

	ants, err := colony.New(console, r)
	if err != nil {
		fini()
		fmt.Fprintf(os.Stderr, "Invalid roster: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console.Clear()
	err = runColony(ctx, ants)

	if *backendFlag == "tcell" && ctx.Err() == nil {
		time.Sleep(tcellLinger)
	}
	fini()

	// tcell restores the primary screen on Fini and may have clipped the notice row
	notice, ok := closingNotice(err)
	if *backendFlag == "tcell" && ok {
		fmt.Println(notice)
	}

	// Interrupt exits 0 like completion; only failures reach here
	if !ok {
		var pe *core.PanicError
		if errors.As(err, &pe) {
			fmt.Fprintf(os.Stderr, "Ant crashed: %v\nStack Trace:\n%s\n", pe.Value, pe.Stack)
		} else {
			fmt.Fprintf(os.Stderr, "Colony failed: %v\n", err)
		}
		return 1
	}
	return 0
}

// runColony runs the supervisor on a crash-guarded goroutine and waits for it
// A panic outside the ants (announce, stats) resets the terminal before exiting
func runColony(ctx context.Context, ants *colony.Colony) error {
	done := make(chan error, 1)
	core.Go(func() {
		done <- ants.Run(ctx)
	})
	return <-done
}

// closingNotice maps the run result to the line shown after teardown
// ok is false when the run failed rather than finished or was interrupted
func closingNotice(err error) (notice string, ok bool) {
	switch {
	case err == nil:
		return constant.CompletionNotice, true
	case errors.Is(err, context.Canceled):
		return constant.InterruptedNotice, true
	default:
		return "", false
	}
}

// loadRoster returns the built-in colony or the one stored at path
func loadRoster(path string) (roster.Roster, error) {
	if path == "" {
		return roster.Default(), nil
	}
	r, err := roster.Load(path)
	if err != nil {
		return roster.Roster{}, err
	}
	log.Printf("roster: loaded %d entities from %s", len(r.Entities), path)
	return r, nil
}

// openSurface creates the render surface and its teardown
func openSurface(backend string) (terminal.Surface, func(), error) {
	switch backend {
	case "ansi":
		return terminal.NewANSISurface(os.Stdout), func() {}, nil
	case "tcell":
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, nil, err
		}
		if err := screen.Init(); err != nil {
			return nil, nil, err
		}
		return terminal.NewTcellSurface(screen), screen.Fini, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// checkTerminalSize logs when stdout is a terminal too small for the canvas
func checkTerminalSize(canvas terminal.Canvas) {
	fd := int(os.Stdout.Fd())
	if !terminal.IsTerminal(fd) {
		log.Printf("terminal: stdout is not a terminal, rendering escape sequences anyway")
		return
	}
	w, h, ok := terminal.Size(fd)
	if !ok {
		return
	}
	if w < canvas.Width || h < canvas.Rows() {
		log.Printf("terminal: %dx%d is smaller than the %dx%d canvas, ants near the edge will be clipped",
			w, h, canvas.Width, canvas.Rows())
	}
}
