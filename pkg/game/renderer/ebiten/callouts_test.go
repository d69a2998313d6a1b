package ebiten

import (
	"image/color"
	"io"
	"math/rand"
	"os"
	"slices"
	"testing"
	"time"

	"darkvale/pkg/engine/logging"
	"darkvale/pkg/engine/world"
	"darkvale/pkg/game/config"
	"darkvale/pkg/game/global"
	"darkvale/pkg/game/mapmode"
	"darkvale/pkg/game/state"
)

func newTestRenderer(t *testing.T) (*EbitenRenderer, *time.Time) {
	t.Helper()
	logging.SetOutput(io.Discard)
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })

	now := time.UnixMilli(10_000)
	e := New(config.NewPreferences(nil))
	e.now = func() time.Time { return now }

	m := mapmode.New(mapmode.Config{
		Name:   "Test",
		Grid:   world.NewGrid(40, 40),
		TilesX: 20,
		TilesY: 20,
		Media:  global.NewMedia(),
		Rand:   rand.New(rand.NewSource(1)),
	})
	e.sess = state.NewSession(m, "test", nil)
	return e, &now
}

func TestCalloutAnimation(t *testing.T) {
	c := Callout{Message: "hi", CreatedAt: 1000, ExpiresAt: 3000}

	alpha, slide, ok := calloutAnimation(c, 1000)
	if !ok || alpha != 0 || slide != -20 {
		t.Errorf("at creation = %v, %v, %v, want 0, -20, true", alpha, slide, ok)
	}
	alpha, slide, ok = calloutAnimation(c, 2000)
	if !ok || alpha != 1 || slide != 0 {
		t.Errorf("mid life = %v, %v, %v, want 1, 0, true", alpha, slide, ok)
	}
	alpha, _, ok = calloutAnimation(c, 2900)
	if !ok || alpha != 0.5 {
		t.Errorf("while leaving = %v, %v, want 0.5, true", alpha, ok)
	}
	if _, _, ok = calloutAnimation(c, 3000); ok {
		t.Error("callout still shown at expiry")
	}

	forever := Callout{CreatedAt: 0}
	if _, _, ok = calloutAnimation(forever, 1_000_000); !ok {
		t.Error("callout without expiry was dropped")
	}
}

func TestAddCalloutKeepsNewest(t *testing.T) {
	e, _ := newTestRenderer(t)
	for _, msg := range []string{"a", "b", "c", "d"} {
		e.AddCallout(msg, ColorCalloutInfo, calloutDuration)
	}
	if len(e.callouts) != maxCallouts || e.callouts[0].Message != "b" {
		t.Errorf("callouts = %v, want the newest %d", e.callouts, maxCallouts)
	}
}

func TestWatchMessages(t *testing.T) {
	e, now := newTestRenderer(t)
	e.sess.AddMessage("first")
	e.watchMessages()
	e.watchMessages()
	if len(e.callouts) != 1 || e.callouts[0].Message != "first" {
		t.Fatalf("callouts = %v, want one for the first message", e.callouts)
	}

	for i := 0; i < 7; i++ {
		e.sess.AddMessage("more")
	}
	e.watchMessages()
	if len(e.callouts) != maxCallouts {
		t.Errorf("len(callouts) = %d, want %d", len(e.callouts), maxCallouts)
	}

	*now = now.Add(calloutDuration * time.Millisecond)
	e.expireCallouts()
	if len(e.callouts) != 0 {
		t.Errorf("len(callouts) = %d after expiry, want 0", len(e.callouts))
	}
}

func TestStickCodes(t *testing.T) {
	if got := stickCodes(0.1, -0.2); len(got) != 0 {
		t.Errorf("stickCodes in dead zone = %v", got)
	}
	got := stickCodes(-0.9, 0.8)
	if !slices.Equal(got, []string{"gamepad_dpad_left", "gamepad_dpad_down"}) {
		t.Errorf("stickCodes(-0.9, 0.8) = %v", got)
	}
}

func TestApplyAlpha(t *testing.T) {
	got := applyAlpha(color.RGBA{200, 100, 50, 255}, 0.5)
	if got != (color.RGBA{100, 50, 25, 127}) {
		t.Errorf("applyAlpha(0.5) = %v", got)
	}
	if got := applyAlpha(color.RGBA{200, 100, 50, 255}, 2); got.A != 255 {
		t.Errorf("alpha above 1 should clamp, got %v", got)
	}
}

func TestWindowSize(t *testing.T) {
	if w, h := windowSize(1.5); w != 1536 || h != 1152 {
		t.Errorf("windowSize(1.5) = %d, %d", w, h)
	}
}

func TestPulsingColorStaysInRange(t *testing.T) {
	base := color.RGBA{200, 200, 200, 255}
	for ms := int64(0); ms < 2000; ms += 100 {
		c := pulsingColor(base, ms)
		if c.R < 119 || c.R > 200 || c.A != 255 {
			t.Errorf("pulsingColor at %dms = %v", ms, c)
		}
	}
}
