// Package tui draws map mode as colored character cells in a terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"darkvale/pkg/engine/input"
	"darkvale/pkg/engine/logging"
	"darkvale/pkg/engine/terminal"
	"darkvale/pkg/engine/timer"
	"darkvale/pkg/engine/video"
	"darkvale/pkg/game/renderer"
	"darkvale/pkg/game/state"
)

// Frame timing
const (
	frameInterval = 50 * time.Millisecond
	headlessTick  = 16  // milliseconds per tick without a terminal
	maxFrameDelta = 100 // longest tick in milliseconds
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorTitle  color.Style
	colorSubtle color.Style
	colorAction color.Style

	out     io.Writer
	colored bool
	rec     video.Recorder
	in      *input.State
	holds   *keyHolds
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{
		out:     os.Stdout,
		colored: true,
		in:      input.NewState(),
		holds:   newKeyHolds(),
	}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() error {
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colored = color.SupportColor()
	return nil
}

// SetOutput redirects the frames; colors are turned off for anything but a terminal
func (t *TUIRenderer) SetOutput(w io.Writer, colored bool) {
	t.out = w
	t.colored = colored
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// Run reads keys and redraws the session until the player quits.
// Without an interactive terminal it falls back to RunHeadless for a single tick.
func (t *TUIRenderer) Run(sess *state.Session) error {
	if !input.IsTerminal() {
		logging.Warnf("TUI", "stdin is not a terminal, drawing a single frame")
		return t.RunHeadless(sess, 1)
	}

	raw, err := input.MakeRaw()
	if err != nil {
		return err
	}
	defer raw.Restore()

	keys := make(chan string, 32)
	go readKeys(keys)

	t.Clear()
	clock := timer.NewClock()
	clock.SetMaxDelta(maxFrameDelta)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for !sess.Done() {
		<-ticker.C
		t.holds.apply(t.in, drain(keys), time.Now().UnixMilli())
		sess.Tick(clock.Tick(), t.in)
		// Cursor home instead of clear, so frames do not flicker
		fmt.Fprint(t.out, "\033[H")
		t.drawFrame(sess)
	}
	fmt.Fprint(t.out, "\r\n"+dynamicGet("GOODBYE")+"\r\n")
	return nil
}

// readKeys forwards terminal keys until stdin fails
func readKeys(keys chan<- string) {
	defer close(keys)
	for {
		code, err := input.ReadCode()
		if err != nil {
			return
		}
		if code != "" {
			keys <- code
		}
	}
}

// RunHeadless runs ticks map updates of headlessTick milliseconds with no input and draws the last frame
func (t *TUIRenderer) RunHeadless(sess *state.Session, ticks int) error {
	in := input.NewState()
	for i := 0; i < ticks && !sess.Done(); i++ {
		sess.Tick(headlessTick, in)
	}
	t.drawFrame(sess)
	return nil
}

// Frame records the session and rasterizes it for a terminal of width x height characters.
// One line is kept for the status bar.
func (t *TUIRenderer) Frame(sess *state.Session, width, height int) *Screen {
	t.rec.Reset()
	renderer.DrawSession(&t.rec, sess)
	cols, rows := terminal.FitAspect(width, height-1, video.StandardResWidth, video.StandardResHeight)
	return Rasterize(t.rec.Ops, cols, rows)
}

func (t *TUIRenderer) drawFrame(sess *state.Session) {
	width, height := terminal.GetSize()
	screen := t.Frame(sess, width, height)
	fmt.Fprint(t.out, screen.Render(t.colored))
	fmt.Fprint(t.out, t.statusLine(sess))
}

// statusLine shows the map name, the tick count and the main keys
func (t *TUIRenderer) statusLine(sess *state.Session) string {
	name := sess.Map.Name()
	keys := "[p] pause  [m] minimap  [q] quit"
	tick := fmt.Sprintf("tick %d", sess.Ticks())
	if !t.colored {
		return name + "  " + tick + "  " + keys
	}
	return t.colorTitle.Sprint(name) + "  " + t.colorSubtle.Sprint(tick) + "  " + t.colorAction.Sprint(keys)
}
