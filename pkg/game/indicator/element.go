// Package indicator animates the floating damage, healing, status and item indicators.
package indicator

import (
	"math"
	"math/rand"

	"darkvale/pkg/engine/timer"
	"darkvale/pkg/engine/video"
)

// Kind selects the motion of an indicator
type Kind int

const (
	KindDamage Kind = iota
	KindHeal
	KindItem
	KindPositiveStatus
	KindNegativeStatus
	KindText
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case KindDamage:
		return "damage"
	case KindHeal:
		return "heal"
	case KindItem:
		return "item"
	case KindPositiveStatus:
		return "positive_status"
	case KindNegativeStatus:
		return "negative_status"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Display sequence timing, in milliseconds
const (
	TotalTime   = 3000
	FadeInTime  = 500
	FadeOutTime = 1000
)

// Motion constants
const (
	InitialForce  = 12.0  // upward launch force
	MaxXForce     = 20.0  // horizontal force is drawn from [-MaxXForce, MaxXForce]
	Gravity       = 26.0  // per second
	TerminalForce = -15.0 // maximum fall speed
	BounceDamping = 0.6
	DriftSpeed    = 5.0 // per second
)

// settleForce is the force under which a bounce is considered over
const settleForce = Gravity / 10

type visual int

const (
	visualText visual = iota
	visualImage
	visualBlended
)

// Element is a single indicator. The visual payload is one of text, image or blended images.
type Element struct {
	variant visual
	kind    Kind

	text  string
	style video.TextStyle

	first  *video.Image
	second *video.Image

	xOrigin, yOrigin float64
	xRel, yRel       float64
	xForce, yForce   float64

	timer *timer.SystemTimer
	alpha float64
}

func newElement(x, y float64, v visual, kind Kind, durationMs int) *Element {
	return &Element{
		variant: v,
		kind:    kind,
		xOrigin: x,
		yOrigin: y,
		yForce:  InitialForce,
		timer:   timer.New(durationMs, 0),
	}
}

// NewText creates a text indicator
func NewText(x, y float64, text string, style video.TextStyle, kind Kind) *Element {
	e := newElement(x, y, visualText, kind, TotalTime)
	e.text = text
	e.style = style
	return e
}

// NewImage creates a single image indicator
func NewImage(x, y float64, img *video.Image, kind Kind) *Element {
	e := newElement(x, y, visualImage, kind, TotalTime)
	e.first = img
	return e
}

// NewBlendedImage creates an indicator that crossfades from first to second
func NewBlendedImage(x, y float64, first, second *video.Image, kind Kind) *Element {
	e := newElement(x, y, visualBlended, kind, TotalTime)
	e.first = first
	e.second = second
	return e
}

// SetDuration changes the total display time of an element that has not started
func (e *Element) SetDuration(ms int) {
	e.timer.SetDuration(ms)
}

// Start arms the timer and gives the element a fresh random push
func (e *Element) Start(rng *rand.Rand) {
	if !e.timer.IsInitial() {
		e.timer.Reset()
	}
	e.timer.Run()

	var r float64
	if rng != nil {
		r = rng.Float64()
	} else {
		r = rand.Float64()
	}
	e.xForce = r*2*MaxXForce - MaxXForce
	e.yForce = InitialForce
	e.xRel, e.yRel = 0, 0
}

// Update advances the element by elapsedMs
func (e *Element) Update(elapsedMs int) {
	e.timer.Update(elapsedMs)
	e.move(float64(elapsedMs))
	e.alpha = e.computeAlpha()
}

func (e *Element) move(elapsed float64) {
	switch e.kind {
	case KindDamage:
		e.yForce -= elapsed / 1000 * Gravity
		if e.yForce < TerminalForce {
			e.yForce = TerminalForce
		}

		e.yRel += e.yForce

		// Ground contact
		if e.yRel <= 0 {
			e.yRel = 0
			if math.Abs(e.yForce) <= settleForce {
				e.yForce = 0
			} else {
				e.yForce = -(e.yForce * BounceDamping)
			}
		}

		if e.yRel > 0 {
			e.xRel += e.xForce / 1000 * elapsed
		}
	case KindItem, KindNegativeStatus:
		e.yRel -= DriftSpeed / 1000 * elapsed
	case KindText:
		e.xRel -= DriftSpeed / 1000 * elapsed
	default:
		e.yRel += DriftSpeed / 1000 * elapsed
	}
}

func (e *Element) computeAlpha() float64 {
	if !e.timer.IsRunning() && !e.timer.IsPaused() {
		return 0
	}
	if expired := e.timer.TimeExpired(); expired < FadeInTime {
		return float64(expired) / FadeInTime
	}
	if left := e.timer.TimeLeft(); left < FadeOutTime {
		return float64(left) / FadeOutTime
	}
	return 1
}

// Draw renders the element on the canvas. It does not modify the element.
func (e *Element) Draw(c video.Canvas) {
	if e.alpha <= 0 {
		return
	}

	// Screen y grows downward, a positive relative y lifts the element
	x := e.xOrigin + e.xRel
	y := e.yOrigin - e.yRel

	switch e.variant {
	case visualText:
		c.DrawText(e.text, x, y, e.style, e.alpha)
	case visualImage:
		drawImage(c, e.first, x, y, e.alpha)
	case visualBlended:
		e.drawBlended(c, x, y)
	}
}

func (e *Element) drawBlended(c video.Canvas, x, y float64) {
	total := float64(e.timer.Duration())
	expired := float64(e.timer.TimeExpired())

	switch {
	case expired <= FadeInTime:
		drawImage(c, e.first, x, y, e.alpha)
	case expired <= total/4:
		drawImage(c, e.first, x, y, 1)
	case expired <= total/2:
		a := clamp01((total/2 - expired) / 1000)
		drawImage(c, e.first, x, y, a)
		drawImage(c, e.second, x, y, 1-a)
	case expired <= total/3*2:
		drawImage(c, e.second, x, y, 1)
	default:
		drawImage(c, e.second, x, y, e.alpha)
	}
}

func drawImage(c video.Canvas, img *video.Image, x, y, alpha float64) {
	if img == nil || alpha <= 0 {
		return
	}
	c.DrawImage(img, x, y, alpha)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// XOrigin returns the horizontal origin
func (e *Element) XOrigin() float64 { return e.xOrigin }

// YOrigin returns the vertical origin
func (e *Element) YOrigin() float64 { return e.yOrigin }

// Position returns where the element is drawn
func (e *Element) Position() (x, y float64) {
	return e.xOrigin + e.xRel, e.yOrigin - e.yRel
}

// Kind returns the motion kind
func (e *Element) Kind() Kind { return e.kind }

// Text returns the text of a text indicator
func (e *Element) Text() string { return e.text }

// Alpha returns the opacity computed by the last Update
func (e *Element) Alpha() float64 { return e.alpha }

// Forces returns the current horizontal and vertical forces
func (e *Element) Forces() (x, y float64) { return e.xForce, e.yForce }

// TimeExpired returns the milliseconds since Start
func (e *Element) TimeExpired() int { return e.timer.TimeExpired() }

// IsExpired reports whether the display sequence has ended
func (e *Element) IsExpired() bool {
	return e.timer.IsFinished()
}
