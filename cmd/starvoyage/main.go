// starvoyage - Terminal Solar System Explorer
// Fly a small craft through a procedurally shaded solar system rendered
// entirely in software, displayed with half-block cells.
//
// Controls:
//
//	W/S         - Fly forward/backward
//	A/D         - Strafe left/right
//	Arrows      - Orbit camera around the craft
//	Mouse drag  - Orbit camera
//	Scroll      - Zoom in/out
//	O           - Toggle orbit paths
//	P           - Save a PNG snapshot
//	Esc/Q       - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/starvoyage/pkg/models"
	"github.com/taigrr/starvoyage/pkg/render"
	"github.com/taigrr/starvoyage/pkg/scene"
)

var (
	craftPath    = flag.String("craft", "", "Path to a GLB model for the craft (default: built-in)")
	targetFPS    = flag.Int("fps", 60, "Target FPS")
	bgColor      = flag.String("bg", "0,0,8", "Background color (R,G,B)")
	showOrbits   = flag.Bool("orbits", false, "Draw orbit paths at startup")
	snapshotPath = flag.String("snapshot", "starvoyage.png", "Path for P-key PNG snapshots")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "starvoyage - Terminal Solar System Explorer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: starvoyage [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  W/S         - Fly forward/backward\n")
		fmt.Fprintf(os.Stderr, "  A/D         - Strafe left/right\n")
		fmt.Fprintf(os.Stderr, "  Arrows      - Orbit camera\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Orbit camera\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  O           - Toggle orbit paths\n")
		fmt.Fprintf(os.Stderr, "  P           - Save a PNG snapshot\n")
		fmt.Fprintf(os.Stderr, "  Esc/Q       - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadCraftMesh loads the GLB craft model, falling back to the built-in
// hull when no path was given.
func loadCraftMesh() (*models.Mesh, error) {
	if *craftPath == "" {
		return models.NewCraft(), nil
	}

	mesh, err := models.LoadGLB(*craftPath)
	if err != nil {
		return nil, fmt.Errorf("load craft model: %w", err)
	}
	mesh.ScaleToFit(2.0)
	return mesh, nil
}

func run() error {
	var bgR, bgG, bgB uint8
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)

	craftMesh, err := loadCraftMesh()
	if err != nil {
		return err
	}

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse tracking for camera drag
	fmt.Fprint(os.Stdout, "\x1b[?1003h")
	fmt.Fprint(os.Stdout, "\x1b[?1006h")

	// Each terminal cell shows two pixels stacked vertically
	fbWidth, fbHeight := width, height*2
	fb := render.NewFramebuffer(fbWidth, fbHeight)
	fb.Background = render.PackRGB(bgR, bgG, bgB)

	world := scene.New(fbWidth, fbHeight, *targetFPS, craftMesh)
	world.ShowOrbits = *showOrbits

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	var mouseDown bool
	var lastMouseX, lastMouseY int
	var snapshotWanted bool

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fbWidth, fbHeight = width, height*2
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				fb.Background = render.PackRGB(bgR, bgG, bgB)
				world.Resize(fbWidth, fbHeight)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("q"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("w"):
					world.Craft.MoveForward()
				case ev.MatchString("s"):
					world.Craft.MoveBackward()
				case ev.MatchString("a"):
					world.Craft.MoveLeft()
				case ev.MatchString("d"):
					world.Craft.MoveRight()
				case ev.MatchString("up"):
					world.Camera.Rotate(0, -10)
				case ev.MatchString("down"):
					world.Camera.Rotate(0, 10)
				case ev.MatchString("left"):
					world.Camera.Rotate(-10, 0)
				case ev.MatchString("right"):
					world.Camera.Rotate(10, 0)
				case ev.MatchString("o"):
					world.ShowOrbits = !world.ShowOrbits
				case ev.MatchString("p"):
					snapshotWanted = true
				case ev.MatchString("+", "="):
					world.Camera.Zoom(1)
				case ev.MatchString("-", "_"):
					world.Camera.Zoom(-1)
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					world.Camera.Rotate(float64(dx), float64(dy))
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					world.Camera.Zoom(1)
				case uv.MouseWheelDown:
					world.Camera.Zoom(-1)
				}
			}
		}
	}()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	targetDuration := time.Second / time.Duration(*targetFPS)
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		frameStart := time.Now()
		elapsed := frameStart.Sub(start).Seconds()

		world.Craft.UpdateAnimation()
		world.Render(fb, elapsed)

		if snapshotWanted {
			snapshotWanted = false
			// A failed snapshot should not kill the session.
			_ = fb.SavePNG(*snapshotPath)
		}

		fb.Draw(term, term.Bounds())
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		if spent := time.Since(frameStart); spent < targetDuration {
			time.Sleep(targetDuration - spent)
		}
	}
}
